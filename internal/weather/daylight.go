package weather

import (
	"sync"
	"time"
)

// timeLayout matches the local timestamps the forecast API returns for
// hourly times and daily sunrise/sunset.
const timeLayout = "2006-01-02T15:04"

// zoneCache memoizes IANA zone lookups so repeated snapshot parsing does not
// hit the tzdata files every time. Populated lazily, never invalidated.
var zoneCache = struct {
	mu sync.Mutex
	m  map[string]*time.Location
}{m: make(map[string]*time.Location)}

func zoneByName(name string) *time.Location {
	if name == "" {
		return time.Local
	}

	zoneCache.mu.Lock()
	defer zoneCache.mu.Unlock()

	if loc, ok := zoneCache.m[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	zoneCache.m[name] = loc
	return loc
}

// Zone resolves the snapshot's timezone, falling back to the system zone
// when it is absent or unknown.
func (s WeatherSnapshot) Zone() *time.Location {
	return zoneByName(s.Timezone)
}

// ParseLocalTime parses an API timestamp in the given zone. Malformed input
// yields ok=false; callers treat that as data being unavailable.
func ParseLocalTime(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(timeLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsNight reports whether t falls before sunrise or after sunset.
func IsNight(t, sunrise, sunset time.Time) bool {
	return t.Before(sunrise) || t.After(sunset)
}

// SunTimes parses today's sunrise and sunset from the daily series.
func (s WeatherSnapshot) SunTimes() (sunrise, sunset time.Time, ok bool) {
	if len(s.Daily.Sunrise) == 0 || len(s.Daily.Sunset) == 0 {
		return time.Time{}, time.Time{}, false
	}
	zone := s.Zone()
	sunrise, ok = ParseLocalTime(s.Daily.Sunrise[0], zone)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	sunset, ok = ParseLocalTime(s.Daily.Sunset[0], zone)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return sunrise, sunset, true
}

// IsNightAt classifies an instant against today's sunrise/sunset. When the
// daily data is missing or malformed it fails open to "day".
func (s WeatherSnapshot) IsNightAt(t time.Time) bool {
	sunrise, sunset, ok := s.SunTimes()
	if !ok {
		return false
	}
	return IsNight(t, sunrise, sunset)
}
