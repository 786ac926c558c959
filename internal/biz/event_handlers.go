package biz

import (
	"context"

	"linkstats/internal/domain/event"
	"linkstats/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface checks
var (
	_ eventbus.EventHandler = (*ClickCounterHandler)(nil)
	_ eventbus.EventHandler = (*ClickRecorderHandler)(nil)
)

// ClickCounterHandler increments the link counter for every hit.
type ClickCounterHandler struct {
	recorder *ClickRecorder
	log      *log.Helper
}

// NewClickCounterHandler creates a new click counter handler.
func NewClickCounterHandler(recorder *ClickRecorder, logger log.Logger) *ClickCounterHandler {
	return &ClickCounterHandler{
		recorder: recorder,
		log:      log.NewHelper(logger),
	}
}

func (h *ClickCounterHandler) HandlerName() string {
	return "click_counter"
}

func (h *ClickCounterHandler) EventName() string {
	return event.LinkHitName
}

// Handle increments the counter of the hit's link.
func (h *ClickCounterHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var hit event.LinkHit
	if err := envelope.Decode(&hit); err != nil {
		h.log.WithContext(ctx).Warnf("failed to decode link hit %s: %v", envelope.EventID, err)
		return nil
	}

	h.recorder.IncrementCounter(ctx, hit.LinkID)
	return nil
}

// ClickRecorderHandler records a click event for every hit.
type ClickRecorderHandler struct {
	recorder *ClickRecorder
	log      *log.Helper
}

// NewClickRecorderHandler creates a new click recorder handler.
func NewClickRecorderHandler(recorder *ClickRecorder, logger log.Logger) *ClickRecorderHandler {
	return &ClickRecorderHandler{
		recorder: recorder,
		log:      log.NewHelper(logger),
	}
}

func (h *ClickRecorderHandler) HandlerName() string {
	return "click_recorder"
}

func (h *ClickRecorderHandler) EventName() string {
	return event.LinkHitName
}

// Handle runs the click recorder for the hit.
func (h *ClickRecorderHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var hit event.LinkHit
	if err := envelope.Decode(&hit); err != nil {
		h.log.WithContext(ctx).Warnf("failed to decode link hit %s: %v", envelope.EventID, err)
		return nil
	}

	h.recorder.Record(ctx, hit)
	return nil
}

// RegisterEventHandlers registers the click pipeline with the router.
func RegisterEventHandlers(router *eventbus.Router, recorder *ClickRecorder, logger log.Logger) {
	router.AddHandler(NewClickCounterHandler(recorder, logger))
	router.AddHandler(NewClickRecorderHandler(recorder, logger))
}
