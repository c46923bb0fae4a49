package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// OptimizeDuration records end-to-end optimization pipeline durations.
	OptimizeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_optimize_duration_seconds",
			Help:    "Duration of construct+improve+detail pipeline runs.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// LegLookups counts leg resolutions against the routing provider by outcome.
	LegLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "leg_lookups_total", Help: "Routing provider leg lookups by outcome."},
		[]string{"outcome"},
	)

	// LegCacheRequests counts leg cache hits and misses.
	LegCacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "leg_cache_requests_total", Help: "Leg cache lookups by result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(OptimizeDuration)
		Registry.MustRegister(LegLookups)
		Registry.MustRegister(LegCacheRequests)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler exposes the registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
