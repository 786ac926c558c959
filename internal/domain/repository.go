package domain

import (
	"context"
	"time"
)

// ClickRepository persists click events and answers aggregate queries over
// them. Every query is scoped to one link.
type ClickRepository interface {
	// Save inserts a new click event.
	Save(ctx context.Context, click *ClickEvent) error

	// ExistsForIP reports whether any click from ip was recorded for the link.
	ExistsForIP(ctx context.Context, linkID, ip string) (bool, error)

	// CountBy groups clicks by field, skipping null and empty values.
	// Rows are ordered by count descending, then by value, and capped at limit.
	CountBy(ctx context.Context, linkID string, field Field, limit int) ([]GroupCount, error)

	// CountBots counts the link's clicks split by the bot flag.
	CountBots(ctx context.Context, linkID string) (BotStats, error)

	// CountTotals returns the click count and the number of first visits.
	CountTotals(ctx context.Context, linkID string) (ClickTotals, error)

	// DailyCounts returns per-day totals and distinct IPs for the UTC days
	// from..to inclusive, ascending by date. Days without clicks are absent.
	DailyCounts(ctx context.Context, linkID string, from, to time.Time) ([]RetentionDay, error)

	// ListClickTimes returns the timestamp and recorded timezone of every click.
	ListClickTimes(ctx context.Context, linkID string) ([]ClickTime, error)

	// ListSlow returns clicks whose latency exceeds thresholdMs, slowest first.
	ListSlow(ctx context.Context, linkID string, thresholdMs int64, limit int) ([]*ClickEvent, error)

	// GeoPoints groups clicks that carry coordinates.
	GeoPoints(ctx context.Context, linkID string) ([]HeatPoint, error)

	// List returns the link's clicks, newest first.
	List(ctx context.Context, linkID string, limit int) ([]*ClickEvent, error)
}

// LinkRepository is the slice of the link store analytics depends on.
type LinkRepository interface {
	// FindByAlias returns nil when no link has the alias.
	FindByAlias(ctx context.Context, alias string) (*Link, error)

	// FindByID returns nil when the link does not exist.
	FindByID(ctx context.Context, id string) (*Link, error)

	// IncrementClickCount atomically adds one to the link's counter.
	IncrementClickCount(ctx context.Context, id string) error
}

// AnomalyRepository reads the feeds written by the anomaly detector.
type AnomalyRepository interface {
	ListFloodEvents(ctx context.Context, linkID string, limit int) ([]*IPFloodEvent, error)
	ListTrafficSpikes(ctx context.Context, linkID string, limit int) ([]*TrafficSpike, error)
}
