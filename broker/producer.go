package broker

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Polceze/taskman/config"
	"github.com/nats-io/nats.go"
)

// Producer sends raw payloads to a subject.
type Producer interface {
	Publish(subject string, data []byte) error
	Close()
}

type NatsProducer struct {
	conn *nats.Conn
}

func InitProducer(cfg config.Config) (*NatsProducer, error) {
	if cfg.NatsURL == "" {
		return nil, errors.New("NATS_URL is not set")
	}

	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.AppName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("Disconnected from NATS: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("Reconnected to NATS at %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}
	log.Printf("NATS producer connected to %s", conn.ConnectedUrl())

	return &NatsProducer{conn: conn}, nil
}

func (p *NatsProducer) Publish(subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}

func (p *NatsProducer) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.FlushTimeout(5 * time.Second); err != nil {
		log.Printf("Failed to flush NATS connection: %v", err)
	}
	p.conn.Close()
}

// NopProducer drops every message. It is used when NATS is not configured.
type NopProducer struct{}

func (NopProducer) Publish(string, []byte) error { return nil }

func (NopProducer) Close() {}

// EventPublisher wraps change events in a Message and hands them to a
// Producer. Failures are logged and never returned to the caller.
type EventPublisher struct {
	producer Producer
	prefix   string
}

func NewEventPublisher(producer Producer, prefix string) *EventPublisher {
	if producer == nil {
		producer = NopProducer{}
	}
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &EventPublisher{producer: producer, prefix: prefix}
}

func (p *EventPublisher) Publish(event EventType, entity string, payload interface{}) {
	if p == nil {
		return
	}

	msg, err := NewMessage(event, entity, payload)
	if err != nil {
		log.Printf("Failed to build %s event: %v", event, err)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to encode %s event: %v", event, err)
		return
	}

	subject := Subject(p.prefix, event)
	if err := p.producer.Publish(subject, data); err != nil {
		log.Printf("Failed to publish message to %s: %v", subject, err)
		return
	}
	log.Printf("Published %s event %s", event, msg.ID)
}

func (p *EventPublisher) Close() {
	if p == nil {
		return
	}
	p.producer.Close()
}
