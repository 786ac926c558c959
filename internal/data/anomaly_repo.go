package data

import (
	"context"

	"linkstats/internal/domain"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface check
var _ domain.AnomalyRepository = (*anomalyRepo)(nil)

const (
	floodEventsTable   = "ip_flood_events"
	trafficSpikesTable = "traffic_spikes"
)

// anomalyRepo reads the feeds written by the anomaly detector.
type anomalyRepo struct {
	data *Data
	log  *log.Helper
}

// NewAnomalyRepo creates a new anomaly repository.
func NewAnomalyRepo(data *Data, logger log.Logger) domain.AnomalyRepository {
	return &anomalyRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/anomaly")),
	}
}

// ListFloodEvents returns the link's flood events, most recent first.
func (r *anomalyRepo) ListFloodEvents(ctx context.Context, linkID string, limit int) ([]*domain.IPFloodEvent, error) {
	selector := r.data.builder().
		Select("id", "link_id", "ip", "click_count", "clicks_per_minute", "is_bot", "window_start", "window_end", "detected_at").
		From(entsql.Table(floodEventsTable)).
		Where(entsql.EQ("link_id", linkID)).
		OrderExpr(entsql.Expr("detected_at DESC, id DESC")).
		Limit(limit)

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.IPFloodEvent, 0)
	for rows.Next() {
		var e domain.IPFloodEvent
		if err := rows.Scan(&e.ID, &e.LinkID, &e.IP, &e.ClickCount, &e.ClicksPerMinute, &e.IsBot,
			&e.WindowStart, &e.WindowEnd, &e.DetectedAt); err != nil {
			return nil, err
		}
		e.WindowStart, e.WindowEnd, e.DetectedAt = e.WindowStart.UTC(), e.WindowEnd.UTC(), e.DetectedAt.UTC()
		result = append(result, &e)
	}
	return result, rows.Err()
}

// ListTrafficSpikes returns the link's traffic spikes, most recent first.
func (r *anomalyRepo) ListTrafficSpikes(ctx context.Context, linkID string, limit int) ([]*domain.TrafficSpike, error) {
	selector := r.data.builder().
		Select("id", "link_id", "spike_count", "window_start", "window_end", "detected_at").
		From(entsql.Table(trafficSpikesTable)).
		Where(entsql.EQ("link_id", linkID)).
		OrderExpr(entsql.Expr("detected_at DESC, id DESC")).
		Limit(limit)

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.TrafficSpike, 0)
	for rows.Next() {
		var s domain.TrafficSpike
		if err := rows.Scan(&s.ID, &s.LinkID, &s.SpikeCount, &s.WindowStart, &s.WindowEnd, &s.DetectedAt); err != nil {
			return nil, err
		}
		s.WindowStart, s.WindowEnd, s.DetectedAt = s.WindowStart.UTC(), s.WindowEnd.UTC(), s.DetectedAt.UTC()
		result = append(result, &s)
	}
	return result, rows.Err()
}
