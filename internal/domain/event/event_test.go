package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinkHit(t *testing.T) {
	received := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	e := NewLinkHit("link-1", "user-1", "promo", received)

	assert.Equal(t, "link.hit", e.EventName())
	assert.Equal(t, "link-1", e.AggregateID())
	assert.Equal(t, "promo", e.Alias)
	assert.Equal(t, received.UTC(), e.OccurredAt())
	assert.NotEmpty(t, e.EventID())
}

func TestNewBase(t *testing.T) {
	at := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("EDT", -4*3600))
	a := NewBase("link-1", at)
	b := NewBase("link-1", at)

	assert.NotEqual(t, a.EventID(), b.EventID())
	assert.Equal(t, time.Date(2024, 5, 2, 3, 30, 0, 0, time.UTC), a.OccurredAt())
	assert.Equal(t, time.UTC, a.OccurredAt().Location())
	assert.Equal(t, "link-1", a.AggregateID())
}
