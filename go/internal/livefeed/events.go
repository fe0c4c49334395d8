package livefeed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType names the payload carried by an Event.
type EventType string

const (
	// EventLiveBoard carries a fixtures.LiveBoard.
	EventLiveBoard EventType = "live_board"
)

// Event is the envelope of every message pushed to live feed clients.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewEvent wraps payload in an Event stamped at now.
func NewEvent(t EventType, payload any, now time.Time) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}
	return &Event{
		ID:        uuid.New().String(),
		Type:      t,
		Timestamp: now,
		Data:      data,
	}, nil
}
