package dial

import (
	"math"
	"time"

	"github.com/amidi-app/meteodial/internal/weather"
)

// forecastOffsets are the hour marks rendered ahead of the current time.
var forecastOffsets = []int{3, 6, 9}

// sunMarkerMaxHours hides the sunrise/sunset marker when the event is too
// far away to sit meaningfully on a 12-hour face.
const sunMarkerMaxHours = 11

// Icon is a weather datapoint placed on the dial.
type Icon struct {
	OffsetHours int               `json:"offsetHours"`
	Time        time.Time         `json:"time"`
	Position    Point             `json:"position"`
	Temperature float64           `json:"temperatureC"`
	WeatherCode int               `json:"weatherCode"`
	Condition   weather.Condition `json:"condition"`
	Night       bool              `json:"night"`
}

// SunMarker is the sunrise or sunset indicator.
type SunMarker struct {
	Kind     string    `json:"kind"` // "sunrise" or "sunset"
	Time     time.Time `json:"time"`
	Position Point     `json:"position"`
}

// Layout is a fully computed radial arrangement for one snapshot.
type Layout struct {
	Now       time.Time  `json:"now"`
	Current   Icon       `json:"current"`
	Forecasts []Icon     `json:"forecasts"`
	Sun       *SunMarker `json:"sun,omitempty"`
	Wind      Wind       `json:"wind"`
}

// Wind is the formatted wind block shown beside the dial.
type Wind struct {
	SpeedMS   float64 `json:"speedMs"`
	Direction float64 `json:"directionDeg"`
	Cardinal  string  `json:"cardinal"`
	Beaufort  string  `json:"beaufort"`
}

// Compute lays out the dial for a snapshot at the given instant. Forecast
// icons that have no data (current hour missing from the series, or the
// wrapped index out of range) are simply omitted, as is the sun marker when
// sunrise/sunset cannot be parsed or the event is more than 11 hours out.
func Compute(snapshot weather.WeatherSnapshot, now time.Time, radius float64, center Point) Layout {
	now = now.In(snapshot.Zone())

	layout := Layout{
		Now: now,
		Current: Icon{
			Time:        now,
			Position:    IconPosition(now, radius, center),
			Temperature: snapshot.Current.Temperature,
			WeatherCode: snapshot.Current.WeatherCode,
			Condition:   weather.ConditionForCode(snapshot.Current.WeatherCode),
			Night:       snapshot.IsNightAt(now),
		},
		Wind: Wind{
			SpeedMS:   snapshot.Current.WindSpeed,
			Direction: snapshot.Current.WindDirection,
			Cardinal:  weather.WindDirection(snapshot.Current.WindDirection),
			Beaufort:  weather.BeaufortLabel(snapshot.Current.WindSpeed),
		},
	}

	for _, offset := range forecastOffsets {
		entry, ok := snapshot.Hourly.At(now, offset)
		if !ok {
			continue
		}
		at := now.Add(time.Duration(offset) * time.Hour)
		layout.Forecasts = append(layout.Forecasts, Icon{
			OffsetHours: offset,
			Time:        at,
			Position:    IconPosition(at, radius, center),
			Temperature: entry.Temperature,
			WeatherCode: entry.WeatherCode,
			Condition:   weather.ConditionForCode(entry.WeatherCode),
			Night:       snapshot.IsNightAt(at),
		})
	}

	layout.Sun = sunMarker(snapshot, now, radius, center)
	return layout
}

// sunMarker picks the next solar event for the current half of the day:
// sunrise while it is night, sunset while it is day. The hour difference is
// folded back into ±12 so an event just past midnight still reads as near.
func sunMarker(snapshot weather.WeatherSnapshot, now time.Time, radius float64, center Point) *SunMarker {
	sunrise, sunset, ok := snapshot.SunTimes()
	if !ok {
		return nil
	}

	night := weather.IsNight(now, sunrise, sunset)
	target, kind := sunset, "sunset"
	if night {
		target, kind = sunrise, "sunrise"
	}

	diff := target.Sub(now).Hours()
	if diff > 12 {
		diff -= 24
	} else if diff < -12 {
		diff += 24
	}
	if math.Abs(diff) >= sunMarkerMaxHours {
		return nil
	}

	return &SunMarker{
		Kind:     kind,
		Time:     target,
		Position: IconPosition(target, radius, center),
	}
}
