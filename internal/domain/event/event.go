package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a fact published on the bus.
type Event interface {
	EventID() string
	EventName() string
	// OccurredAt is when the fact happened, not when it was published.
	OccurredAt() time.Time
	// AggregateID identifies the link the event belongs to.
	AggregateID() string
}

// Base carries the envelope fields shared by all events.
type Base struct {
	ID        string    `json:"event_id"`
	At        time.Time `json:"occurred_at"`
	Aggregate string    `json:"aggregate_id"`
}

// NewBase stamps a new event for linkID with a time-ordered id. occurredAt
// is stored in UTC.
func NewBase(linkID string, occurredAt time.Time) Base {
	return Base{
		ID:        uuid.Must(uuid.NewV7()).String(),
		At:        occurredAt.UTC(),
		Aggregate: linkID,
	}
}

func (b Base) EventID() string       { return b.ID }
func (b Base) OccurredAt() time.Time { return b.At }
func (b Base) AggregateID() string   { return b.Aggregate }
