package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Event pipeline counters, labelled by topic. Dropped counts malformed
// payloads; failed counts handler errors that were logged and skipped.
var (
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_events_published_total",
		Help: "Domain events published to the broker.",
	}, []string{"topic"})

	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_events_consumed_total",
		Help: "Domain events consumed and handled successfully.",
	}, []string{"topic"})

	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_events_dropped_total",
		Help: "Undecodable events logged and dropped.",
	}, []string{"topic"})

	EventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_events_failed_total",
		Help: "Events whose handler returned an error.",
	}, []string{"topic"})
)

// MetricsHandler exposes the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
