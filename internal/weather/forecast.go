package weather

import (
	"fmt"
	"strings"
	"time"
)

// At returns the forecast entry offset whole hours ahead of now.
//
// The anchor index is the first hourly timestamp whose text contains the
// current "HH:00" hour. When the target index runs past the end of the
// series the lookup wraps to the head of the array, which is read as the
// start of the next day's data: the series is assumed to begin at midnight
// of the current day and cover two days. Note the wrapped index is the plain
// remainder of the overflow, not re-anchored at the following midnight; that
// mirrors the behaviour the dial has always shown.
//
// ok is false when the current hour is not present in the series or the
// wrapped index still falls outside it.
func (h Hourly) At(now time.Time, offset int) (ForecastEntry, bool) {
	if offset < 0 || len(h.Time) == 0 {
		return ForecastEntry{}, false
	}

	marker := fmt.Sprintf("%02d:00", now.Hour())
	anchor := -1
	for i, ts := range h.Time {
		if strings.Contains(ts, marker) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return ForecastEntry{}, false
	}

	target := anchor + offset
	if target >= len(h.Time) {
		remaining := offset - (len(h.Time) - anchor)
		if remaining >= len(h.Time) {
			return ForecastEntry{}, false
		}
		target = remaining
	}

	return ForecastEntry{
		Time:        h.Time[target],
		Temperature: h.Temperature[target],
		WeatherCode: h.WeatherCode[target],
	}, true
}
