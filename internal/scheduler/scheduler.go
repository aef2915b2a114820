package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/amidi-app/meteodial/internal/weather"
)

// SelectedLoader exposes the persisted user selection to the refresher.
type SelectedLoader interface {
	LoadSelected() (weather.Location, bool, error)
}

// Scheduler periodically re-fetches weather for the selected and preset
// locations so interactive requests stay on the warm cache path. A failed
// fetch is logged and left alone until the next run.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	prefs     SelectedLoader
	presets   []weather.Location
	interval  time.Duration
}

// New creates a new Scheduler.
func New(service *weather.Service, prefs SelectedLoader, presets []weather.Location, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		prefs:     prefs,
		presets:   presets,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		locations := s.collectLocations()
		if len(locations) == 0 {
			return
		}
		log.Printf("scheduler: refreshing %d locations", len(locations))

		var wg sync.WaitGroup
		for _, loc := range locations {
			wg.Add(1)
			go func(loc weather.Location) {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.service.Fetch(ctx, loc); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", loc.Key(), err)
				}
			}(loc)
		}
		wg.Wait()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// collectLocations merges the persisted selection with the presets,
// deduplicating by coordinate key.
func (s *Scheduler) collectLocations() []weather.Location {
	var locations []weather.Location
	seen := make(map[string]bool)

	if s.prefs != nil {
		if selected, ok, err := s.prefs.LoadSelected(); err != nil {
			log.Printf("scheduler: load selected location: %v", err)
		} else if ok {
			locations = append(locations, selected)
			seen[selected.Key()] = true
		}
	}

	for _, loc := range s.presets {
		if seen[loc.Key()] {
			continue
		}
		locations = append(locations, loc)
		seen[loc.Key()] = true
	}

	return locations
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
