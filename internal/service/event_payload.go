package service

import (
	"encoding/json"
	"time"
)

// EventPayload is the wire form of an event on Redis and Kafka.
type EventPayload struct {
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

func marshalEvent(eventType, message string, at time.Time) ([]byte, error) {
	return json.Marshal(EventPayload{
		Type:       eventType,
		Message:    message,
		OccurredAt: at.UTC(),
	})
}
