package biz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	clicksRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkstats",
		Name:      "clicks_recorded_total",
		Help:      "Click events processed by the recorder, by outcome.",
	}, []string{"result"})

	highLatencyClicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "linkstats",
		Name:      "high_latency_clicks_total",
		Help:      "Clicks whose redirect latency exceeded the threshold.",
	})

	counterIncrementFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "linkstats",
		Name:      "click_counter_failures_total",
		Help:      "Link click counter increments that failed.",
	})

	redirectLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "linkstats",
		Name:      "redirect_latency_ms",
		Help:      "Time from receiving a hit to serving its redirect.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
)
