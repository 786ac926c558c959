package biz

import (
	"context"

	"linkstats/internal/classifier"
	"linkstats/internal/domain"
	"linkstats/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
)

// Enricher looks up what is known about a visitor. Implementations never
// fail; an unknown visitor yields the empty enrichment.
type Enricher interface {
	Enrich(ctx context.Context, ip, userAgent string) domain.Enrichment
}

// ClickRecorder turns link hits into persisted click events.
type ClickRecorder struct {
	clicks   domain.ClickRepository
	links    domain.LinkRepository
	enricher Enricher
	referers *classifier.RefererClassifier
	log      *log.Helper
}

// NewClickRecorder creates a new click recorder.
func NewClickRecorder(
	clicks domain.ClickRepository,
	links domain.LinkRepository,
	enricher Enricher,
	referers *classifier.RefererClassifier,
	logger log.Logger,
) *ClickRecorder {
	return &ClickRecorder{
		clicks:   clicks,
		links:    links,
		enricher: enricher,
		referers: referers,
		log:      log.NewHelper(log.With(logger, "module", "biz/recorder")),
	}
}

// IncrementCounter bumps the link's click counter. Failures are logged.
func (r *ClickRecorder) IncrementCounter(ctx context.Context, linkID string) {
	if err := r.links.IncrementClickCount(ctx, linkID); err != nil {
		counterIncrementFailures.Inc()
		r.log.WithContext(ctx).Errorf("failed to increment click count for link %s: %v", linkID, err)
	}
}

// Record builds and stores the click event for hit. It never fails; a
// click that cannot be stored is logged and dropped.
func (r *ClickRecorder) Record(ctx context.Context, hit event.LinkHit) {
	enrichment := r.enricher.Enrich(ctx, hit.IP, hit.UserAgent)

	seen, err := r.clicks.ExistsForIP(ctx, hit.LinkID, hit.IP)
	if err != nil {
		r.log.WithContext(ctx).Warnf("first-visit lookup failed for link %s: %v", hit.LinkID, err)
		seen = true
	}

	click := domain.NewClickEvent(domain.ClickInput{
		LinkID:          hit.LinkID,
		UserID:          hit.UserID,
		Timestamp:       hit.OccurredAt(),
		IP:              hit.IP,
		Enrichment:      enrichment,
		Referer:         hit.Referer,
		RefererCategory: r.referers.Categorize(hit.Referer),
		UTM:             classifier.ExtractUTM(hit.QueryParams),
		Language:        hit.Language,
		LatencyMs:       hit.LatencyMs,
		IsFirstVisit:    !seen,
	})

	if click.IsHighLatency {
		highLatencyClicks.Inc()
		r.log.WithContext(ctx).Warnf("high redirect latency detected: %dms for link %s", click.LatencyMs, click.LinkID)
	}

	if err := r.clicks.Save(ctx, click); err != nil {
		clicksRecorded.WithLabelValues(resultError).Inc()
		r.log.WithContext(ctx).Errorf("failed to record click for link %s: %v", click.LinkID, err)
		return
	}
	clicksRecorded.WithLabelValues(resultOK).Inc()
}
