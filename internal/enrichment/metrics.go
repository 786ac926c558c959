package enrichment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var enrichmentFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "linkstats",
	Name:      "enrichment_failures_total",
	Help:      "Oracle calls that fell back to the empty enrichment.",
})
