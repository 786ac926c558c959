package biz

import (
	"context"
	"fmt"
	"time"

	"linkstats/internal/domain"
	"linkstats/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
)

// HitPublisher publishes domain events to the click pipeline.
type HitPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// HitRequest is the request metadata captured when a visitor is redirected.
type HitRequest struct {
	Alias       string
	IP          string
	UserAgent   string
	Referer     string
	Language    string
	QueryParams map[string]string
	ReceivedAt  time.Time
}

// HitUsecase resolves aliases for the redirect endpoint and hands every
// served hit to the click pipeline.
type HitUsecase struct {
	links     domain.LinkRepository
	publisher HitPublisher
	log       *log.Helper
	now       func() time.Time
}

// NewHitUsecase creates a new hit usecase.
func NewHitUsecase(links domain.LinkRepository, publisher HitPublisher, logger log.Logger) *HitUsecase {
	return &HitUsecase{
		links:     links,
		publisher: publisher,
		log:       log.NewHelper(log.With(logger, "module", "biz/hit")),
		now:       time.Now,
	}
}

// Hit resolves req.Alias and publishes a link.hit event for it. The link is
// returned so the caller can redirect; publishing failures are only logged.
func (uc *HitUsecase) Hit(ctx context.Context, req HitRequest) (*domain.Link, error) {
	link, err := uc.links.FindByAlias(ctx, req.Alias)
	if err != nil {
		return nil, fmt.Errorf("resolve alias %q: %w", req.Alias, err)
	}
	if link == nil {
		return nil, domain.ErrLinkNotFound
	}

	latency := uc.now().Sub(req.ReceivedAt).Milliseconds()
	redirectLatency.Observe(float64(latency))

	hit := event.NewLinkHit(link.ID, link.UserID, link.Alias, req.ReceivedAt)
	hit.IP = req.IP
	hit.UserAgent = req.UserAgent
	hit.Referer = req.Referer
	hit.Language = req.Language
	hit.QueryParams = req.QueryParams
	hit.LatencyMs = latency

	if err := uc.publisher.Publish(context.WithoutCancel(ctx), hit); err != nil {
		uc.log.WithContext(ctx).Errorf("failed to publish hit for link %s: %v", link.ID, err)
	}
	return link, nil
}
