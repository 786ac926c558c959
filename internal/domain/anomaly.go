package domain

import "time"

const (
	FloodFeedLimit = 100
	SpikeFeedLimit = 50
)

// IPFloodEvent flags an IP that clicked a link abnormally often. Produced by
// an external detector.
type IPFloodEvent struct {
	ID              string    `json:"id"`
	LinkID          string    `json:"linkId"`
	IP              string    `json:"ip"`
	ClickCount      int64     `json:"clickCount"`
	ClicksPerMinute float64   `json:"clicksPerMinute"`
	IsBot           bool      `json:"isBot"`
	WindowStart     time.Time `json:"timeWindowStart"`
	WindowEnd       time.Time `json:"timeWindowEnd"`
	DetectedAt      time.Time `json:"detectedAt"`
}

// TrafficSpike flags a window in which a link received unusual traffic.
type TrafficSpike struct {
	ID          string    `json:"id"`
	LinkID      string    `json:"linkId"`
	SpikeCount  int64     `json:"spikeCount"`
	WindowStart time.Time `json:"timeWindowStart"`
	WindowEnd   time.Time `json:"timeWindowEnd"`
	DetectedAt  time.Time `json:"detectedAt"`
}
