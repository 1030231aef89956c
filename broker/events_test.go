package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	testCases := []struct {
		name    string
		event   EventType
		payload interface{}
		wantErr bool
	}{
		{
			name:    "Valid payload",
			event:   TaskCreated,
			payload: map[string]interface{}{"id": 1},
			wantErr: false,
		},
		{
			name:    "Invalid JSON payload",
			event:   TaskUpdated,
			payload: make(chan int),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := NewMessage(tc.event, TaskEntity, tc.payload)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, msg)
			assert.Equal(t, tc.event, msg.Event)
			assert.Equal(t, TaskEntity, msg.Entity)
			assert.Len(t, msg.ID, 36)
			assert.JSONEq(t, `{"id":1}`, string(msg.Payload))
		})
	}
}
