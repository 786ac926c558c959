package biz

import (
	"context"
	"fmt"
	"time"

	"linkstats/internal/conf"
	"linkstats/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

const (
	DefaultRetentionDays = 30
	MaxRetentionDays     = 366
	DefaultExportLimit   = 1000
	HighLatencyFeedLimit = 100

	defaultLocationCacheSize = 256
)

// StatsUsecase answers the analytics queries over a link's click events.
type StatsUsecase struct {
	clicks      domain.ClickRepository
	links       domain.LinkRepository
	anomalies   domain.AnomalyRepository
	locations   *lru.Cache[string, *time.Location]
	exportLimit int
	log         *log.Helper
	now         func() time.Time
}

// NewStatsUsecase creates a new stats usecase.
func NewStatsUsecase(
	clicks domain.ClickRepository,
	links domain.LinkRepository,
	anomalies domain.AnomalyRepository,
	c *conf.Stats,
	logger log.Logger,
) (*StatsUsecase, error) {
	exportLimit, cacheSize := DefaultExportLimit, defaultLocationCacheSize
	if c != nil {
		if c.ExportLimit > 0 {
			exportLimit = c.ExportLimit
		}
		if c.LocationCacheSize > 0 {
			cacheSize = c.LocationCacheSize
		}
	}

	locations, err := lru.New[string, *time.Location](cacheSize)
	if err != nil {
		return nil, err
	}

	return &StatsUsecase{
		clicks:      clicks,
		links:       links,
		anomalies:   anomalies,
		locations:   locations,
		exportLimit: exportLimit,
		log:         log.NewHelper(log.With(logger, "module", "biz/stats")),
		now:         time.Now,
	}, nil
}

// GeoStats counts the link's clicks per geographic value.
func (uc *StatsUsecase) GeoStats(ctx context.Context, linkID string, key domain.GeoKey) ([]domain.GroupCount, error) {
	field, err := key.Field()
	if err != nil {
		return nil, err
	}
	return uc.countBy(ctx, linkID, field)
}

// UTMStats counts the link's clicks per campaign parameter value.
func (uc *StatsUsecase) UTMStats(ctx context.Context, linkID string, key domain.UTMKey) ([]domain.GroupCount, error) {
	field, err := key.Field()
	if err != nil {
		return nil, err
	}
	return uc.countBy(ctx, linkID, field)
}

// DeviceStats counts the link's clicks per device attribute value.
func (uc *StatsUsecase) DeviceStats(ctx context.Context, linkID string, key domain.DeviceKey) ([]domain.GroupCount, error) {
	field, err := key.Field()
	if err != nil {
		return nil, err
	}
	return uc.countBy(ctx, linkID, field)
}

// BotStats splits the link's clicks into humans and bots.
func (uc *StatsUsecase) BotStats(ctx context.Context, linkID string) (domain.BotStats, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return domain.BotStats{}, err
	}

	stats, err := uc.clicks.CountBots(ctx, linkID)
	if err != nil {
		return domain.BotStats{}, fmt.Errorf("count bots: %w", err)
	}
	return stats, nil
}

// Retention returns the daily totals of the last days UTC days, today
// included. Only days with clicks are returned, oldest first.
func (uc *StatsUsecase) Retention(ctx context.Context, linkID string, days int) ([]domain.RetentionDay, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	days = NormalizeRetentionDays(days)
	to := uc.now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -(days - 1))

	result, err := uc.clicks.DailyCounts(ctx, linkID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	return result, nil
}

// NormalizeRetentionDays applies the default and the upper bound.
func NormalizeRetentionDays(days int) int {
	switch {
	case days <= 0:
		return DefaultRetentionDays
	case days > MaxRetentionDays:
		return MaxRetentionDays
	default:
		return days
	}
}

// LocalHourDistribution counts clicks per hour of the visitor's local
// clock. All 24 hours are present, ascending.
func (uc *StatsUsecase) LocalHourDistribution(ctx context.Context, linkID string) ([]domain.HourCount, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	times, err := uc.clicks.ListClickTimes(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("list click times: %w", err)
	}

	var buckets [24]int64
	for _, t := range times {
		buckets[t.Timestamp.In(uc.location(t.Timezone)).Hour()]++
	}

	return lo.Map(buckets[:], func(count int64, hour int) domain.HourCount {
		return domain.HourCount{Hour: hour, Count: count}
	}), nil
}

// location resolves an IANA zone name, falling back to UTC for empty or
// unknown names. Both outcomes are cached. "Local" names the server's zone,
// not the visitor's, so it counts as unknown.
func (uc *StatsUsecase) location(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.UTC
	}
	if loc, ok := uc.locations.Get(name); ok {
		return loc
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		uc.log.Debugf("unknown timezone %q, using UTC", name)
		loc = time.UTC
	}
	uc.locations.Add(name, loc)
	return loc
}

// TrafficByCategory counts the link's clicks per referer category.
func (uc *StatsUsecase) TrafficByCategory(ctx context.Context, linkID string) ([]domain.CategoryCount, error) {
	rows, err := uc.countBy(ctx, linkID, domain.FieldRefererCategory)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row domain.GroupCount, _ int) domain.CategoryCount {
		return domain.CategoryCount{Category: domain.RefererCategory(row.Key), Count: row.Count}
	}), nil
}

// FloodEvents returns the link's most recent IP flood events.
func (uc *StatsUsecase) FloodEvents(ctx context.Context, linkID string) ([]*domain.IPFloodEvent, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	events, err := uc.anomalies.ListFloodEvents(ctx, linkID, domain.FloodFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("list flood events: %w", err)
	}
	return events, nil
}

// TrafficSpikes returns the link's most recent traffic spikes.
func (uc *StatsUsecase) TrafficSpikes(ctx context.Context, linkID string) ([]*domain.TrafficSpike, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	spikes, err := uc.anomalies.ListTrafficSpikes(ctx, linkID, domain.SpikeFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("list traffic spikes: %w", err)
	}
	return spikes, nil
}

// Summary returns the headline numbers of the link.
func (uc *StatsUsecase) Summary(ctx context.Context, linkID string) (*domain.LinkSummary, error) {
	link, err := uc.link(ctx, linkID)
	if err != nil {
		return nil, err
	}

	totals, err := uc.clicks.CountTotals(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("count totals: %w", err)
	}
	return &domain.LinkSummary{
		LinkID:         link.ID,
		Alias:          link.Alias,
		OriginalURL:    link.OriginalURL,
		TotalClicks:    totals.TotalClicks,
		UniqueVisitors: totals.UniqueVisitors,
	}, nil
}

// HighLatencyEvents lists the link's slowest redirects above the threshold.
func (uc *StatsUsecase) HighLatencyEvents(ctx context.Context, linkID string) (*domain.LatencyReport, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	events, err := uc.clicks.ListSlow(ctx, linkID, domain.HighLatencyThresholdMs, HighLatencyFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("list slow clicks: %w", err)
	}
	return &domain.LatencyReport{
		ThresholdMs: domain.HighLatencyThresholdMs,
		Count:       len(events),
		Events:      events,
	}, nil
}

// GeoHeatmap returns weighted coordinates of the link's clicks.
func (uc *StatsUsecase) GeoHeatmap(ctx context.Context, linkID string) ([]domain.HeatPoint, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	points, err := uc.clicks.GeoPoints(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("geo points: %w", err)
	}
	return points, nil
}

// ListClicks returns the link's raw click events, newest first. A limit
// outside 1..export limit selects the export limit.
func (uc *StatsUsecase) ListClicks(ctx context.Context, linkID string, limit int) ([]*domain.ClickEvent, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > uc.exportLimit {
		limit = uc.exportLimit
	}
	clicks, err := uc.clicks.List(ctx, linkID, limit)
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	return clicks, nil
}

func (uc *StatsUsecase) countBy(ctx context.Context, linkID string, field domain.Field) ([]domain.GroupCount, error) {
	if _, err := uc.link(ctx, linkID); err != nil {
		return nil, err
	}

	rows, err := uc.clicks.CountBy(ctx, linkID, field, domain.MaxGroupRows)
	if err != nil {
		return nil, fmt.Errorf("count by field %d: %w", field, err)
	}
	return rows, nil
}

func (uc *StatsUsecase) link(ctx context.Context, linkID string) (*domain.Link, error) {
	link, err := uc.links.FindByID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("find link: %w", err)
	}
	if link == nil {
		return nil, domain.ErrLinkNotFound
	}
	return link, nil
}
