package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amidi-app/meteodial/internal/metrics"
)

// ErrFetchFailed wraps every upstream failure (URL, transport, decode) into
// the single condition callers are expected to handle.
var ErrFetchFailed = errors.New("weather fetch failed")

// Fetcher retrieves a fresh snapshot for a location from the upstream API.
type Fetcher interface {
	Fetch(ctx context.Context, loc Location) (WeatherSnapshot, error)
}

// Service answers weather queries from the cache, falling back to the
// upstream fetcher when the cached entry is missing or stale. Safe for
// concurrent use.
type Service struct {
	fetcher Fetcher
	cache   *snapshotCache
}

// NewService creates a Service caching snapshots for ttl.
func NewService(fetcher Fetcher, ttl time.Duration) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   newSnapshotCache(ttl),
	}
}

// Fetch returns the weather snapshot for loc. A fresh cache entry is served
// without a network call; otherwise one upstream request is made and its
// result overwrites the entry for the location's key. On failure the error
// propagates and the cache is left untouched.
func (s *Service) Fetch(ctx context.Context, loc Location) (WeatherSnapshot, error) {
	key := loc.Key()

	if snapshot, ok := s.cache.get(key); ok {
		metrics.CacheHits.Inc()
		return snapshot, nil
	}
	metrics.CacheMisses.Inc()

	snapshot, err := s.fetcher.Fetch(ctx, loc)
	if err != nil {
		metrics.WeatherFetches.WithLabelValues("error").Inc()
		return WeatherSnapshot{}, fmt.Errorf("%w for %s: %v", ErrFetchFailed, key, err)
	}
	metrics.WeatherFetches.WithLabelValues("ok").Inc()

	s.cache.put(key, snapshot)
	return snapshot, nil
}
