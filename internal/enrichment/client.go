package enrichment

import (
	"context"
	"strings"
	"time"

	"linkstats/internal/conf"
	"linkstats/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
	"github.com/samber/lo"
)

// ProviderSet is enrichment providers.
var ProviderSet = wire.NewSet(NewClient)

const (
	// DefaultTimeout bounds a single oracle call when none is configured.
	DefaultTimeout = 2 * time.Second

	analyzePath = "/analyze/click"
)

type analyzeRequest struct {
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
}

type analyzeResponse struct {
	Geo struct {
		Country   string   `json:"country"`
		State     string   `json:"state"`
		City      string   `json:"city"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Timezone  string   `json:"timezone"`
	} `json:"geo"`
	ASN struct {
		Number       *int64 `json:"number"`
		Organization string `json:"organization"`
	} `json:"asn"`
	ISP          string `json:"isp"`
	IsVPNOrProxy *bool  `json:"isVpnOrProxy"`
	IsTor        *bool  `json:"isTor"`
	IsMalicious  *bool  `json:"isMalicious"`
	IsBot        bool   `json:"isBot"`
	Device       struct {
		Type string `json:"type"`
	} `json:"device"`
	OS      nameVersion `json:"os"`
	Browser nameVersion `json:"browser"`
}

type nameVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (nv nameVersion) String() string {
	return strings.Join(lo.Compact([]string{nv.Name, nv.Version}), " ")
}

// Client calls the enrichment oracle. It never fails: every error yields
// the empty enrichment.
type Client struct {
	http    *http.Client
	timeout time.Duration
	log     *log.Helper
}

// NewClient creates an oracle client for c. A missing endpoint yields a
// client that always returns the empty enrichment.
func NewClient(c *conf.Enrichment, logger log.Logger) (*Client, func(), error) {
	helper := log.NewHelper(log.With(logger, "module", "enrichment"))
	timeout := DefaultTimeout
	if c != nil && c.Timeout.AsDuration() > 0 {
		timeout = c.Timeout.AsDuration()
	}

	client := &Client{timeout: timeout, log: helper}
	if c == nil || c.Endpoint == "" {
		helper.Warn("enrichment endpoint not configured, clicks will not be enriched")
		return client, func() {}, nil
	}

	hc, err := http.NewClient(context.Background(),
		http.WithEndpoint(c.Endpoint),
		http.WithTimeout(timeout),
	)
	if err != nil {
		return nil, nil, err
	}
	client.http = hc

	cleanup := func() {
		if err := hc.Close(); err != nil {
			helper.Error(err)
		}
	}
	return client, cleanup, nil
}

// Enrich asks the oracle about ip and userAgent.
func (c *Client) Enrich(ctx context.Context, ip, userAgent string) domain.Enrichment {
	if c.http == nil {
		return domain.Enrichment{}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reply analyzeResponse
	err := c.http.Invoke(ctx, "POST", analyzePath, &analyzeRequest{IP: ip, UserAgent: userAgent}, &reply)
	if err != nil {
		enrichmentFailures.Inc()
		c.log.WithContext(ctx).Warnf("enrichment failed for ip %s: %v", ip, err)
		return domain.Enrichment{}
	}
	return reply.toDomain()
}

func (r *analyzeResponse) toDomain() domain.Enrichment {
	return domain.Enrichment{
		Geo: domain.Geo{
			Country:   r.Geo.Country,
			State:     r.Geo.State,
			City:      r.Geo.City,
			Latitude:  r.Geo.Latitude,
			Longitude: r.Geo.Longitude,
			ASN:       r.ASN.Number,
			ISP:       lo.CoalesceOrEmpty(r.ISP, r.ASN.Organization),
			Timezone:  r.Geo.Timezone,
		},
		Device: domain.Device{
			Type:    r.Device.Type,
			OS:      r.OS.String(),
			Browser: r.Browser.String(),
		},
		IsBot: r.IsBot,
		Security: domain.Security{
			IsVPN:       r.IsVPNOrProxy,
			IsTor:       r.IsTor,
			IsProxy:     r.IsVPNOrProxy,
			IsMalicious: r.IsMalicious,
		},
	}
}
