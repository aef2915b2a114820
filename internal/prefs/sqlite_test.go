package prefs

import (
	"path/filepath"
	"testing"

	"github.com/amidi-app/meteodial/internal/weather"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadSelectedEmpty(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.LoadSelected()
	if err != nil {
		t.Fatalf("LoadSelected failed: %v", err)
	}
	if ok {
		t.Fatal("expected no selection in a fresh store")
	}
}

func TestSaveAndLoadSelected(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveSelected(weather.Kutaisi); err != nil {
		t.Fatalf("SaveSelected failed: %v", err)
	}

	loc, ok, err := s.LoadSelected()
	if err != nil {
		t.Fatalf("LoadSelected failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a selection after save")
	}
	if loc.ID != weather.Kutaisi.ID || loc.Name != weather.Kutaisi.Name {
		t.Fatalf("loaded %+v, want %+v", loc, weather.Kutaisi)
	}
	if loc.Latitude != weather.Kutaisi.Latitude || loc.Longitude != weather.Kutaisi.Longitude {
		t.Fatalf("coordinates did not round-trip: %+v", loc)
	}
}

func TestSaveSelectedOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveSelected(weather.Kutaisi); err != nil {
		t.Fatalf("SaveSelected failed: %v", err)
	}
	if err := s.SaveSelected(weather.Batumi); err != nil {
		t.Fatalf("SaveSelected failed: %v", err)
	}

	loc, ok, err := s.LoadSelected()
	if err != nil || !ok {
		t.Fatalf("LoadSelected = (%v, %v)", ok, err)
	}
	if loc.Name != weather.Batumi.Name {
		t.Fatalf("loaded %q, want the later selection %q", loc.Name, weather.Batumi.Name)
	}
}
