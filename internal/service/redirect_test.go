package service

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"linkstats/internal/biz"
	"linkstats/internal/domain"
	"linkstats/internal/domain/event"
	"linkstats/internal/mocks"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedirectServer(t *testing.T) (*http.Server, *mocks.MockLinkRepository, *mocks.MockHitPublisher) {
	links := mocks.NewMockLinkRepository(t)
	publisher := mocks.NewMockHitPublisher(t)

	srv := http.NewServer()
	RegisterRedirectHTTPServer(srv, NewRedirectService(biz.NewHitUsecase(links, publisher, log.DefaultLogger), log.DefaultLogger))
	return srv, links, publisher
}

func TestRedirectService_Redirect(t *testing.T) {
	// Arrange
	srv, links, publisher := newRedirectServer(t)
	links.EXPECT().FindByAlias(mock.Anything, "promo").
		Return(&domain.Link{ID: "link-1", UserID: "user-1", Alias: "promo", OriginalURL: "https://example.com/landing"}, nil)

	var hit event.LinkHit
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e event.Event) { hit = e.(event.LinkHit) }).
		Return(nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/r/promo?utm_source=mail&utm_source=ignored&ref=x", nil)
	req.RemoteAddr = "10.0.0.9:51234"
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://www.google.com/search?q=x")
	req.Header.Set("Accept-Language", "fr-CH, fr;q=0.9")
	rec := httptest.NewRecorder()

	// Act
	srv.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, nethttp.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "https://example.com/landing", rec.Header().Get("Location"))
	assert.Equal(t, "link-1", hit.LinkID)
	assert.Equal(t, "user-1", hit.UserID)
	assert.Equal(t, "198.51.100.4", hit.IP)
	assert.Equal(t, "Mozilla/5.0", hit.UserAgent)
	assert.Equal(t, "https://www.google.com/search?q=x", hit.Referer)
	assert.Equal(t, "fr-CH, fr;q=0.9", hit.Language)
	assert.Equal(t, map[string]string{"utm_source": "mail", "ref": "x"}, hit.QueryParams)
	assert.GreaterOrEqual(t, hit.LatencyMs, int64(0))
}

func TestRedirectService_NotFound(t *testing.T) {
	// Arrange
	srv, links, _ := newRedirectServer(t)
	links.EXPECT().FindByAlias(mock.Anything, "nope").Return(nil, nil)
	rec := httptest.NewRecorder()

	// Act
	srv.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/r/nope", nil))

	// Assert
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, ReasonLinkNotFound, reason(t, rec))
}

func TestRedirectService_LookupFailure(t *testing.T) {
	// Arrange
	srv, links, _ := newRedirectServer(t)
	links.EXPECT().FindByAlias(mock.Anything, "promo").Return(nil, errors.New("db down"))
	rec := httptest.NewRecorder()

	// Act
	srv.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/r/promo", nil))

	// Assert
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, ReasonRedirectFailed, reason(t, rec))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "forwarded first entry", forwarded: " 203.0.113.1 , 10.0.0.1", realIP: "10.0.0.2", remoteAddr: "10.0.0.3:1", want: "203.0.113.1"},
		{name: "real ip", realIP: "203.0.113.2", remoteAddr: "10.0.0.3:1", want: "203.0.113.2"},
		{name: "remote addr", remoteAddr: "203.0.113.3:4567", want: "203.0.113.3"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote addr without port", remoteAddr: "203.0.113.4", want: "203.0.113.4"},
		{name: "empty forwarded entry", forwarded: ", 10.0.0.1", remoteAddr: "203.0.113.5:1", want: "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
