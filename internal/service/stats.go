package service

import (
	"context"
	nethttp "net/http"
	"strconv"

	"linkstats/internal/biz"
	"linkstats/internal/domain"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/samber/lo"
)

const (
	OperationStatsSummary        = "/linkstats.v1.Stats/Summary"
	OperationStatsGeo            = "/linkstats.v1.Stats/Geo"
	OperationStatsUTM            = "/linkstats.v1.Stats/UTM"
	OperationStatsDevices        = "/linkstats.v1.Stats/Devices"
	OperationStatsBots           = "/linkstats.v1.Stats/Bots"
	OperationStatsRetention      = "/linkstats.v1.Stats/Retention"
	OperationStatsHourly         = "/linkstats.v1.Stats/Hourly"
	OperationStatsTrafficSources = "/linkstats.v1.Stats/TrafficSources"
	OperationStatsFloodEvents    = "/linkstats.v1.Stats/FloodEvents"
	OperationStatsTrafficSpikes  = "/linkstats.v1.Stats/TrafficSpikes"
	OperationStatsLatencyEvents  = "/linkstats.v1.Stats/LatencyEvents"
	OperationStatsGeoHeatmap     = "/linkstats.v1.Stats/GeoHeatmap"
	OperationStatsClicks         = "/linkstats.v1.Stats/Clicks"
)

// StatsService exposes the aggregation engine over HTTP.
type StatsService struct {
	uc  *biz.StatsUsecase
	log *log.Helper
}

func NewStatsService(uc *biz.StatsUsecase, logger log.Logger) *StatsService {
	return &StatsService{
		uc:  uc,
		log: log.NewHelper(log.With(logger, "module", "service/stats")),
	}
}

// RegisterStatsHTTPServer mounts the stats routes under /v1/stats.
func RegisterStatsHTTPServer(s *http.Server, svc *StatsService) {
	r := s.Route("/v1/stats")
	r.GET("/{link_id}", svc.summary)
	r.GET("/{link_id}/geo", svc.geo)
	r.GET("/{link_id}/utm", svc.utm)
	r.GET("/{link_id}/devices", svc.devices)
	r.GET("/{link_id}/bots", svc.bots)
	r.GET("/{link_id}/retention", svc.retention)
	r.GET("/{link_id}/hourly", svc.hourly)
	r.GET("/{link_id}/traffic-sources", svc.trafficSources)
	r.GET("/{link_id}/flood-events", svc.floodEvents)
	r.GET("/{link_id}/traffic-spikes", svc.trafficSpikes)
	r.GET("/{link_id}/latency-events", svc.latencyEvents)
	r.GET("/{link_id}/geo-heatmap", svc.geoHeatmap)
	r.GET("/{link_id}/clicks", svc.clicks)
}

// handle runs query through the server middleware chain and writes its
// result as JSON.
func (s *StatsService) handle(ctx http.Context, operation string, query func(ctx context.Context, linkID string) (any, error)) error {
	http.SetOperation(ctx, operation)
	linkID := ctx.Vars().Get("link_id")

	h := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return query(ctx, linkID)
	})
	out, err := h(ctx, nil)
	if err != nil {
		se := toStatsError(err)
		if errors.Code(se) >= nethttp.StatusInternalServerError {
			s.log.WithContext(ctx).Errorf("%s for link %s: %v", operation, linkID, err)
		}
		return se
	}
	return ctx.Result(nethttp.StatusOK, out)
}

func (s *StatsService) summary(ctx http.Context) error {
	return s.handle(ctx, OperationStatsSummary, func(ctx context.Context, linkID string) (any, error) {
		return s.uc.Summary(ctx, linkID)
	})
}

func (s *StatsService) geo(ctx http.Context) error {
	key, err := domain.ParseGeoKey(ctx.Query().Get("groupBy"))
	if err != nil {
		return toStatsError(err)
	}
	return s.handle(ctx, OperationStatsGeo, func(ctx context.Context, linkID string) (any, error) {
		rows, err := s.uc.GeoStats(ctx, linkID, key)
		return lo.CoalesceSliceOrEmpty(rows), err
	})
}

func (s *StatsService) utm(ctx http.Context) error {
	key, err := domain.ParseUTMKey(ctx.Query().Get("groupBy"))
	if err != nil {
		return toStatsError(err)
	}
	return s.handle(ctx, OperationStatsUTM, func(ctx context.Context, linkID string) (any, error) {
		rows, err := s.uc.UTMStats(ctx, linkID, key)
		return lo.CoalesceSliceOrEmpty(rows), err
	})
}

func (s *StatsService) devices(ctx http.Context) error {
	key, err := domain.ParseDeviceKey(ctx.Query().Get("groupBy"))
	if err != nil {
		return toStatsError(err)
	}
	return s.handle(ctx, OperationStatsDevices, func(ctx context.Context, linkID string) (any, error) {
		rows, err := s.uc.DeviceStats(ctx, linkID, key)
		return lo.CoalesceSliceOrEmpty(rows), err
	})
}

func (s *StatsService) bots(ctx http.Context) error {
	return s.handle(ctx, OperationStatsBots, func(ctx context.Context, linkID string) (any, error) {
		return s.uc.BotStats(ctx, linkID)
	})
}

func (s *StatsService) retention(ctx http.Context) error {
	days, err := intQuery(ctx, "days")
	if err != nil {
		return toStatsError(domain.ErrInvalidDays)
	}
	return s.handle(ctx, OperationStatsRetention, func(ctx context.Context, linkID string) (any, error) {
		rows, err := s.uc.Retention(ctx, linkID, days)
		return lo.CoalesceSliceOrEmpty(rows), err
	})
}

func (s *StatsService) hourly(ctx http.Context) error {
	return s.handle(ctx, OperationStatsHourly, func(ctx context.Context, linkID string) (any, error) {
		return s.uc.LocalHourDistribution(ctx, linkID)
	})
}

func (s *StatsService) trafficSources(ctx http.Context) error {
	return s.handle(ctx, OperationStatsTrafficSources, func(ctx context.Context, linkID string) (any, error) {
		rows, err := s.uc.TrafficByCategory(ctx, linkID)
		return lo.CoalesceSliceOrEmpty(rows), err
	})
}

func (s *StatsService) floodEvents(ctx http.Context) error {
	return s.handle(ctx, OperationStatsFloodEvents, func(ctx context.Context, linkID string) (any, error) {
		events, err := s.uc.FloodEvents(ctx, linkID)
		return lo.CoalesceSliceOrEmpty(events), err
	})
}

func (s *StatsService) trafficSpikes(ctx http.Context) error {
	return s.handle(ctx, OperationStatsTrafficSpikes, func(ctx context.Context, linkID string) (any, error) {
		spikes, err := s.uc.TrafficSpikes(ctx, linkID)
		return lo.CoalesceSliceOrEmpty(spikes), err
	})
}

func (s *StatsService) latencyEvents(ctx http.Context) error {
	return s.handle(ctx, OperationStatsLatencyEvents, func(ctx context.Context, linkID string) (any, error) {
		report, err := s.uc.HighLatencyEvents(ctx, linkID)
		if err != nil {
			return nil, err
		}
		report.Events = lo.CoalesceSliceOrEmpty(report.Events)
		return report, nil
	})
}

func (s *StatsService) geoHeatmap(ctx http.Context) error {
	return s.handle(ctx, OperationStatsGeoHeatmap, func(ctx context.Context, linkID string) (any, error) {
		points, err := s.uc.GeoHeatmap(ctx, linkID)
		return lo.CoalesceSliceOrEmpty(points), err
	})
}

func (s *StatsService) clicks(ctx http.Context) error {
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		return errors.BadRequest(ReasonInvalidLimit, "limit must be an integer").
			WithMetadata(map[string]string{"field": "limit"})
	}
	return s.handle(ctx, OperationStatsClicks, func(ctx context.Context, linkID string) (any, error) {
		clicks, err := s.uc.ListClicks(ctx, linkID, limit)
		return lo.CoalesceSliceOrEmpty(clicks), err
	})
}

// intQuery parses an optional integer query parameter. Absent means zero.
func intQuery(ctx http.Context, name string) (int, error) {
	raw := ctx.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
