package event

import "time"

// LinkHitName is the event name of LinkHit.
const LinkHitName = "link.hit"

// LinkHit is raised when a visitor is served a short link. It carries the raw
// request metadata the click recorder needs.
type LinkHit struct {
	Base
	LinkID      string            `json:"link_id"`
	UserID      string            `json:"user_id"`
	Alias       string            `json:"alias"`
	IP          string            `json:"ip"`
	UserAgent   string            `json:"user_agent"`
	Referer     string            `json:"referer"`
	QueryParams map[string]string `json:"query_params"`
	Language    string            `json:"language"`
	LatencyMs   int64             `json:"latency_ms"`
}

// NewLinkHit creates a LinkHit stamped with receivedAt.
func NewLinkHit(linkID, userID, alias string, receivedAt time.Time) LinkHit {
	return LinkHit{
		Base:   NewBase(linkID, receivedAt),
		LinkID: linkID,
		UserID: userID,
		Alias:  alias,
	}
}

// EventName returns the event name.
func (e LinkHit) EventName() string {
	return LinkHitName
}
