package domain

import "time"

// MaxGroupRows caps every grouped stats view.
const MaxGroupRows = 100

// GroupCount is one row of a grouped view.
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// CategoryCount is one row of the traffic-by-category view.
type CategoryCount struct {
	Category RefererCategory `json:"category"`
	Count    int64           `json:"count"`
}

// BotStats partitions a link's clicks by the bot flag.
type BotStats struct {
	HumanCount int64 `json:"humanCount"`
	BotCount   int64 `json:"botCount"`
}

// RetentionDay is one UTC day of the retention view.
type RetentionDay struct {
	Date           string `json:"date"`
	TotalClicks    int64  `json:"totalClicks"`
	UniqueVisitors int64  `json:"uniqueVisitors"`
}

// HourCount is one bucket of the local-hour distribution.
type HourCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

// ClickTime is the minimum needed to place a click on a local clock.
type ClickTime struct {
	Timestamp time.Time
	Timezone  string
}

// HeatPoint is one weighted coordinate of the geo heatmap.
type HeatPoint struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country,omitempty"`
	City    string  `json:"city,omitempty"`
	Weight  int64   `json:"weight"`
}

// ClickTotals are the headline numbers of a link.
type ClickTotals struct {
	TotalClicks    int64
	UniqueVisitors int64
}

// LinkSummary is the overview of a link's traffic.
type LinkSummary struct {
	LinkID         string `json:"linkId"`
	Alias          string `json:"alias"`
	OriginalURL    string `json:"originalUrl"`
	TotalClicks    int64  `json:"totalClicks"`
	UniqueVisitors int64  `json:"uniqueVisitors"`
}

// LatencyReport lists a link's high-latency clicks.
type LatencyReport struct {
	ThresholdMs int64         `json:"threshold"`
	Count       int           `json:"count"`
	Events      []*ClickEvent `json:"events"`
}
