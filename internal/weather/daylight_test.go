package weather

import (
	"testing"
	"time"
)

func TestParseLocalTime(t *testing.T) {
	got, ok := ParseLocalTime("2024-06-01T05:30", time.UTC)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2024, 6, 1, 5, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}

	if _, ok := ParseLocalTime("not-a-time", time.UTC); ok {
		t.Fatal("expected parse to fail on malformed input")
	}
	if _, ok := ParseLocalTime("2024-06-01 05:30", time.UTC); ok {
		t.Fatal("expected parse to fail on the wrong separator")
	}
}

func TestIsNight(t *testing.T) {
	sunrise := time.Date(2024, 6, 1, 5, 30, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 20, 15, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before sunrise", time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC), true},
		{"at sunrise", sunrise, false},
		{"midday", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), false},
		{"at sunset", sunset, false},
		{"after sunset", time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		if got := IsNight(tt.at, sunrise, sunset); got != tt.want {
			t.Errorf("%s: IsNight = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsNightAtFailsOpenToDay(t *testing.T) {
	snapshot := WeatherSnapshot{
		Daily:    Daily{Sunrise: []string{"garbage"}, Sunset: []string{"2024-06-01T20:15"}},
		Timezone: "UTC",
	}

	if snapshot.IsNightAt(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)) {
		t.Fatal("unparseable sunrise must classify as day")
	}

	empty := WeatherSnapshot{Timezone: "UTC"}
	if empty.IsNightAt(time.Now()) {
		t.Fatal("missing daily data must classify as day")
	}
}

func TestSunTimes(t *testing.T) {
	snapshot := WeatherSnapshot{
		Daily:    Daily{Sunrise: []string{"2024-06-01T05:30"}, Sunset: []string{"2024-06-01T20:15"}},
		Timezone: "UTC",
	}

	sunrise, sunset, ok := snapshot.SunTimes()
	if !ok {
		t.Fatal("expected sun times to parse")
	}
	if sunrise.Hour() != 5 || sunrise.Minute() != 30 {
		t.Errorf("sunrise = %v", sunrise)
	}
	if sunset.Hour() != 20 || sunset.Minute() != 15 {
		t.Errorf("sunset = %v", sunset)
	}
}

func TestZoneFallback(t *testing.T) {
	if got := (WeatherSnapshot{}).Zone(); got != time.Local {
		t.Errorf("empty timezone should resolve to local, got %v", got)
	}
	if got := (WeatherSnapshot{Timezone: "No/SuchZone"}).Zone(); got != time.Local {
		t.Errorf("unknown timezone should resolve to local, got %v", got)
	}
	if got := (WeatherSnapshot{Timezone: "UTC"}).Zone(); got != time.UTC {
		t.Errorf("UTC should resolve to time.UTC, got %v", got)
	}
}
