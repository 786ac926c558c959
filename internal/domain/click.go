package domain

import (
	"time"

	"github.com/google/uuid"
)

// HighLatencyThresholdMs is the redirect latency above which a click is flagged.
const HighLatencyThresholdMs int64 = 500

// ClickDateLayout is the layout of ClickEvent.ClickDate.
const ClickDateLayout = "2006-01-02"

// RefererCategory classifies where a visitor came from.
type RefererCategory string

const (
	CategorySocial  RefererCategory = "social"
	CategorySearch  RefererCategory = "search"
	CategoryEmail   RefererCategory = "email"
	CategoryAds     RefererCategory = "ads"
	CategoryDirect  RefererCategory = "direct"
	CategoryOther   RefererCategory = "other"
	CategoryUnknown RefererCategory = "unknown"
)

// Geo is the location part of an enrichment result. Every field is optional.
type Geo struct {
	Country   string   `json:"country,omitempty"`
	State     string   `json:"state,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	ASN       *int64   `json:"asn,omitempty"`
	ISP       string   `json:"isp,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}

// Device describes the visitor's device. OS and Browser carry "name version".
type Device struct {
	Type    string `json:"type,omitempty"`
	OS      string `json:"os,omitempty"`
	Browser string `json:"browser,omitempty"`
}

// UTM holds the campaign parameters of a hit. A nil field means the
// parameter was not present.
type UTM struct {
	Source   *string `json:"source"`
	Medium   *string `json:"medium"`
	Campaign *string `json:"campaign"`
	Term     *string `json:"term"`
	Content  *string `json:"content"`
}

// Security holds reputation flags reported by the enrichment oracle.
type Security struct {
	IsVPN       *bool `json:"isVpn,omitempty"`
	IsTor       *bool `json:"isTor,omitempty"`
	IsProxy     *bool `json:"isProxy,omitempty"`
	IsMalicious *bool `json:"isMalicious,omitempty"`
}

// ClickEvent is one recorded hit on a short link. It is written once and
// never updated.
type ClickEvent struct {
	ID              string          `json:"id"`
	LinkID          string          `json:"linkId"`
	UserID          string          `json:"userId"`
	Timestamp       time.Time       `json:"timestamp"`
	IP              string          `json:"ip"`
	Geo             Geo             `json:"geo"`
	Device          Device          `json:"device"`
	Referer         string          `json:"referer,omitempty"`
	RefererCategory RefererCategory `json:"refererCategory"`
	UTM             UTM             `json:"utm"`
	Language        string          `json:"language,omitempty"`
	IsBot           bool            `json:"isBot"`
	Security        Security        `json:"securityFlags"`
	LatencyMs       int64           `json:"redirectLatencyMs"`
	IsHighLatency   bool            `json:"isHighLatency"`
	IsFirstVisit    bool            `json:"isFirstVisit"`
}

// ClickDate returns the UTC calendar day the click belongs to.
func (c *ClickEvent) ClickDate() string {
	return c.Timestamp.UTC().Format(ClickDateLayout)
}

// ClickInput is everything needed to build a ClickEvent.
type ClickInput struct {
	LinkID          string
	UserID          string
	Timestamp       time.Time
	IP              string
	Enrichment      Enrichment
	Referer         string
	RefererCategory RefererCategory
	UTM             UTM
	Language        string
	LatencyMs       int64
	IsFirstVisit    bool
}

// NewClickEvent builds a ClickEvent and derives its flags. Negative
// latencies are clamped to zero.
func NewClickEvent(in ClickInput) *ClickEvent {
	latency := in.LatencyMs
	if latency < 0 {
		latency = 0
	}
	return &ClickEvent{
		ID:              uuid.Must(uuid.NewV7()).String(),
		LinkID:          in.LinkID,
		UserID:          in.UserID,
		Timestamp:       in.Timestamp.UTC(),
		IP:              in.IP,
		Geo:             in.Enrichment.Geo,
		Device:          in.Enrichment.Device,
		Referer:         in.Referer,
		RefererCategory: in.RefererCategory,
		UTM:             in.UTM,
		Language:        in.Language,
		IsBot:           in.Enrichment.IsBot,
		Security:        in.Enrichment.Security,
		LatencyMs:       latency,
		IsHighLatency:   IsHighLatency(latency),
		IsFirstVisit:    in.IsFirstVisit,
	}
}

// IsHighLatency reports whether latencyMs exceeds HighLatencyThresholdMs.
func IsHighLatency(latencyMs int64) bool {
	return latencyMs > HighLatencyThresholdMs
}
