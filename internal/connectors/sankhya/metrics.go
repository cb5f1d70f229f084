package sankhya

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	loginCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sankhya",
		Subsystem: "session",
		Name:      "logins_total",
		Help:      "Number of login calls made to the ERP, by outcome.",
	}, []string{"outcome"})

	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sankhya",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Number of authenticated gateway calls, by service and outcome.",
	}, []string{"service", "outcome"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sankhya",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Latency of authenticated gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service"})
)

func init() {
	prometheus.MustRegister(loginCounter, requestCounter, requestDuration)
}

const (
	outcomeSuccess   = "success"
	outcomeExpired   = "session_expired"
	outcomeFailure   = "failure"
	outcomeAuthError = "auth_error"
)

func recordLogin(outcome string) {
	loginCounter.WithLabelValues(outcome).Inc()
}

func recordRequest(service, outcome string, started time.Time) {
	requestCounter.WithLabelValues(service, outcome).Inc()
	requestDuration.WithLabelValues(service).Observe(time.Since(started).Seconds())
}
