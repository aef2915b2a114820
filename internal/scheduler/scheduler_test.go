package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/amidi-app/meteodial/internal/weather"
)

type stubLoader struct {
	loc weather.Location
	ok  bool
	err error
}

func (l *stubLoader) LoadSelected() (weather.Location, bool, error) {
	return l.loc, l.ok, l.err
}

func TestCollectLocationsDeduplicates(t *testing.T) {
	presets := []weather.Location{weather.Kutaisi, weather.Tbilisi}
	loader := &stubLoader{loc: weather.Kutaisi, ok: true}

	s := New(nil, loader, presets, 15*time.Minute)

	got := s.collectLocations()
	if len(got) != 2 {
		t.Fatalf("expected 2 locations after dedup, got %d", len(got))
	}
	// The persisted selection comes first.
	if got[0].Key() != weather.Kutaisi.Key() {
		t.Errorf("first location = %s, want the selection", got[0].Key())
	}
}

func TestCollectLocationsWithoutSelection(t *testing.T) {
	presets := []weather.Location{weather.Kutaisi, weather.Tbilisi}

	s := New(nil, &stubLoader{}, presets, 15*time.Minute)

	if got := s.collectLocations(); len(got) != 2 {
		t.Fatalf("expected the presets, got %d locations", len(got))
	}
}

func TestCollectLocationsLoaderError(t *testing.T) {
	presets := []weather.Location{weather.Batumi}
	loader := &stubLoader{err: errors.New("db closed")}

	s := New(nil, loader, presets, 15*time.Minute)

	got := s.collectLocations()
	if len(got) != 1 || got[0].Key() != weather.Batumi.Key() {
		t.Fatalf("expected presets only on loader error, got %+v", got)
	}
}
