package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and histograms for the service's hot paths. All metrics register
// on the default registry and are served from /metrics.
var (
	WeatherFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meteodial_weather_fetches_total",
		Help: "Outbound forecast fetches by outcome.",
	}, []string{"outcome"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meteodial_cache_hits_total",
		Help: "Snapshot cache hits.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meteodial_cache_misses_total",
		Help: "Snapshot cache misses, including stale entries.",
	})

	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meteodial_geocode_requests_total",
		Help: "Geocoding searches by outcome.",
	}, []string{"outcome"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meteodial_http_request_duration_seconds",
		Help:    "HTTP request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
