package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/suite"
)

var handlerCounter atomic.Int64

type RouterTestSuite struct {
	suite.Suite
	eventBus *EventBus
	sut      *Router
	logger   watermill.LoggerAdapter
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.logger = watermill.NopLogger{}
	s.eventBus = NewEventBus(s.logger)

	var err error
	s.sut, err = NewRouter(s.eventBus, s.logger)
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TearDownTest() {
	if s.sut != nil {
		s.sut.Close()
	}
	if s.eventBus != nil {
		s.eventBus.Close()
	}
}

// mockHandler is a test event handler.
type mockHandler struct {
	name      string
	eventName string
	err       error
	panics    bool
	received  []*EventEnvelope
	mu        sync.Mutex
	wg        sync.WaitGroup
}

func newMockHandler(eventName string) *mockHandler {
	id := handlerCounter.Add(1)
	return &mockHandler{
		name:      fmt.Sprintf("mock_handler_%s_%d", eventName, id),
		eventName: eventName,
		received:  make([]*EventEnvelope, 0),
	}
}

func (h *mockHandler) HandlerName() string {
	return h.name
}

func (h *mockHandler) EventName() string {
	return h.eventName
}

func (h *mockHandler) Handle(ctx context.Context, envelope *EventEnvelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = append(h.received, envelope)
	h.wg.Done()
	if h.panics {
		panic("handler bug")
	}
	return h.err
}

func (h *mockHandler) ReceivedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.received)
}

func (h *mockHandler) ExpectMessages(count int) {
	h.wg.Add(count)
}

func (h *mockHandler) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (s *RouterTestSuite) start() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go s.sut.Run(ctx)
	<-s.sut.Running()
	return cancel
}

func (s *RouterTestSuite) TestRouterHandlesEvent() {
	// Arrange
	handler := newMockHandler("link.hit")
	handler.ExpectMessages(1)
	s.sut.AddHandler(handler)
	cancel := s.start()
	defer cancel()

	// Act
	err := s.eventBus.Publish(context.Background(), newHit("link-1"))

	// Assert
	s.Require().NoError(err)
	s.True(handler.Wait(2*time.Second), "handler should receive the event")
	s.Equal(1, handler.ReceivedCount())
}

func (s *RouterTestSuite) TestRouterFiltersEventsByName() {
	// Arrange
	hitHandler := newMockHandler("link.hit")
	otherHandler := newMockHandler("link.created")
	hitHandler.ExpectMessages(1)
	s.sut.AddHandler(hitHandler)
	s.sut.AddHandler(otherHandler)
	cancel := s.start()
	defer cancel()

	// Act
	err := s.eventBus.Publish(context.Background(), newHit("link-1"))

	// Assert
	s.Require().NoError(err)
	s.True(hitHandler.Wait(2 * time.Second))
	time.Sleep(100 * time.Millisecond)
	s.Equal(1, hitHandler.ReceivedCount())
	s.Equal(0, otherHandler.ReceivedCount())
}

func (s *RouterTestSuite) TestHandlersAreIndependent() {
	// Arrange
	failing := newMockHandler("link.hit")
	failing.err = errors.New("store unavailable")
	healthy := newMockHandler("link.hit")
	failing.ExpectMessages(2)
	healthy.ExpectMessages(2)
	s.sut.AddHandler(failing)
	s.sut.AddHandler(healthy)
	cancel := s.start()
	defer cancel()

	// Act
	s.Require().NoError(s.eventBus.Publish(context.Background(), newHit("link-1")))
	s.Require().NoError(s.eventBus.Publish(context.Background(), newHit("link-2")))

	// Assert
	s.True(failing.Wait(2 * time.Second))
	s.True(healthy.Wait(2 * time.Second))
	time.Sleep(100 * time.Millisecond)
	s.Equal(2, failing.ReceivedCount(), "failed messages are not redelivered")
	s.Equal(2, healthy.ReceivedCount())
}

func (s *RouterTestSuite) TestPanickingHandlerIsRecovered() {
	// Arrange
	panicking := newMockHandler("link.hit")
	panicking.panics = true
	healthy := newMockHandler("link.hit")
	panicking.ExpectMessages(2)
	healthy.ExpectMessages(2)
	s.sut.AddHandler(panicking)
	s.sut.AddHandler(healthy)
	cancel := s.start()
	defer cancel()

	// Act
	s.Require().NoError(s.eventBus.Publish(context.Background(), newHit("link-1")))
	s.Require().NoError(s.eventBus.Publish(context.Background(), newHit("link-2")))

	// Assert
	s.True(panicking.Wait(2 * time.Second))
	s.True(healthy.Wait(2 * time.Second))
	time.Sleep(100 * time.Millisecond)
	s.Equal(2, panicking.ReceivedCount(), "panicked messages are not redelivered")
	s.Equal(2, healthy.ReceivedCount())
}
