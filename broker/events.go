package broker

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// Standardized event types in format: <resource>.<action>
	TaskCreated EventType = "task.created"
	TaskUpdated EventType = "task.updated"
	TaskDeleted EventType = "task.deleted"
)

// Message is the envelope published for every change event.
type Message struct {
	ID        string          `json:"id"`
	Event     EventType       `json:"event"`
	Entity    string          `json:"entity"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

func NewMessage(event EventType, entity string, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{
		ID:        uuid.New().String(),
		Event:     event,
		Entity:    entity,
		Timestamp: time.Now().UTC(),
		Payload:   data,
	}, nil
}
