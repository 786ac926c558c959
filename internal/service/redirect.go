package service

import (
	"context"
	"net"
	nethttp "net/http"
	"strings"
	"time"

	"linkstats/internal/biz"
	"linkstats/internal/domain"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/samber/lo"
)

const OperationRedirect = "/linkstats.v1.Redirect/Redirect"

// RedirectService serves short links and captures every hit.
type RedirectService struct {
	uc  *biz.HitUsecase
	log *log.Helper
}

func NewRedirectService(uc *biz.HitUsecase, logger log.Logger) *RedirectService {
	return &RedirectService{
		uc:  uc,
		log: log.NewHelper(log.With(logger, "module", "service/redirect")),
	}
}

// RegisterRedirectHTTPServer mounts GET /r/{alias}.
func RegisterRedirectHTTPServer(s *http.Server, svc *RedirectService) {
	r := s.Route("/")
	r.GET("/r/{alias}", svc.redirect)
}

func (s *RedirectService) redirect(ctx http.Context) error {
	receivedAt := time.Now()
	http.SetOperation(ctx, OperationRedirect)
	req := ctx.Request()

	hit := biz.HitRequest{
		Alias:       ctx.Vars().Get("alias"),
		IP:          ClientIP(req),
		UserAgent:   req.UserAgent(),
		Referer:     req.Referer(),
		Language:    req.Header.Get("Accept-Language"),
		QueryParams: lo.MapValues(req.URL.Query(), func(values []string, _ string) string { return values[0] }),
		ReceivedAt:  receivedAt,
	}

	h := ctx.Middleware(func(ctx context.Context, _ any) (any, error) {
		return s.uc.Hit(ctx, hit)
	})
	out, err := h(ctx, nil)
	if err != nil {
		if se := new(errors.Error); errors.As(err, &se) {
			return se
		}
		if errors.Is(err, domain.ErrLinkNotFound) {
			return errors.NotFound(ReasonLinkNotFound, "link not found")
		}
		s.log.WithContext(ctx).Errorf("failed to resolve alias %s: %v", ctx.Vars().Get("alias"), err)
		return errors.InternalServer(ReasonRedirectFailed, "failed to resolve link").WithCause(err)
	}

	link := out.(*domain.Link)
	nethttp.Redirect(ctx.Response(), req, link.OriginalURL, nethttp.StatusMovedPermanently)
	return nil
}

// ClientIP returns the visitor address: the first X-Forwarded-For entry,
// then X-Real-IP, then the connection's remote host.
func ClientIP(r *nethttp.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
