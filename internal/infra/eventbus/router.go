package eventbus

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// EventHandler consumes one kind of event from LinkHitsTopic.
type EventHandler interface {
	HandlerName() string
	EventName() string
	Handle(ctx context.Context, envelope *EventEnvelope) error
}

// Router fans hits out to handlers. Each handler has its own subscription
// and every message is acked whatever the handler returns, so a failing or
// panicking consumer neither blocks the others nor sees a redelivery.
type Router struct {
	router   *message.Router
	eventBus *EventBus
	logger   watermill.LoggerAdapter
}

func NewRouter(eventBus *EventBus, logger watermill.LoggerAdapter) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	r := &Router{router: router, eventBus: eventBus, logger: logger}
	router.AddMiddleware(r.ackAlways, middleware.Recoverer)
	return r, nil
}

func (r *Router) AddHandler(handler EventHandler) {
	r.router.AddNoPublisherHandler(
		handler.HandlerName(),
		LinkHitsTopic,
		r.eventBus.Subscriber(),
		dispatch(handler),
	)
}

func dispatch(handler EventHandler) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		envelope, err := MessageToEnvelope(msg)
		if err != nil {
			return fmt.Errorf("decode message %s: %w", msg.UUID, err)
		}
		if envelope.EventName != handler.EventName() {
			return nil
		}
		return handler.Handle(msg.Context(), envelope)
	}
}

// ackAlways logs handler failures and swallows them.
func (r *Router) ackAlways(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		produced, err := h(msg)
		if err != nil {
			r.logger.Error("dropping event after handler failure", err, watermill.LogFields{
				"handler":    message.HandlerNameFromCtx(msg.Context()),
				"message_id": msg.UUID,
				"event_name": msg.Metadata.Get("event_name"),
			})
		}
		return produced, nil
	}
}

func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once every subscription is live.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

func (r *Router) Close() error {
	return r.router.Close()
}
