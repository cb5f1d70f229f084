package activity

import "github.com/prometheus/client_golang/prometheus"

var readFallbackCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "crm",
	Subsystem: "activity",
	Name:      "read_fallbacks_total",
	Help:      "Number of activity reads that failed upstream and were answered with an empty list.",
})

func init() {
	prometheus.MustRegister(readFallbackCounter)
}
