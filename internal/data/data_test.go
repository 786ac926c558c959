package data

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"linkstats/internal/data/schema"
	"linkstats/internal/domain"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
)

var dbCounter atomic.Int64

// newTestDriver opens a private in-memory SQLite database with the schema applied.
func newTestDriver(t *testing.T) *entsql.Driver {
	t.Helper()

	dsn := fmt.Sprintf("file:linkstats_%d?mode=memory&cache=shared&_fk=1", dbCounter.Add(1))
	drv, err := entsql.Open(dialect.SQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, schema.Create(context.Background(), drv))
	t.Cleanup(func() { drv.Close() })
	return drv
}

func insertLink(t *testing.T, d *Data, l *domain.Link) {
	t.Helper()

	insert := d.builder().Insert(linksTable).
		Columns(linkColumns...).
		Values(l.ID, l.UserID, l.Alias, l.OriginalURL, l.ClickCount, l.CreatedAt, l.UpdatedAt)
	require.NoError(t, d.exec(context.Background(), insert))
}

func insertFloodEvent(t *testing.T, d *Data, e *domain.IPFloodEvent) {
	t.Helper()

	insert := d.builder().Insert(floodEventsTable).
		Columns("id", "link_id", "ip", "click_count", "clicks_per_minute", "is_bot", "window_start", "window_end", "detected_at").
		Values(e.ID, e.LinkID, e.IP, e.ClickCount, e.ClicksPerMinute, e.IsBot, e.WindowStart, e.WindowEnd, e.DetectedAt)
	require.NoError(t, d.exec(context.Background(), insert))
}

func insertTrafficSpike(t *testing.T, d *Data, s *domain.TrafficSpike) {
	t.Helper()

	insert := d.builder().Insert(trafficSpikesTable).
		Columns("id", "link_id", "spike_count", "window_start", "window_end", "detected_at").
		Values(s.ID, s.LinkID, s.SpikeCount, s.WindowStart, s.WindowEnd, s.DetectedAt)
	require.NoError(t, d.exec(context.Background(), insert))
}

func newLink(id, alias string) *domain.Link {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Link{
		ID:          id,
		UserID:      "user-1",
		Alias:       alias,
		OriginalURL: "https://example.com/" + alias,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ptr[T any](v T) *T {
	return &v
}
