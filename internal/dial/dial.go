// Package dial maps wall-clock time onto a 12-hour clock face: angles,
// points on a circle, and the full radial layout of weather icons.
package dial

import (
	"math"
	"time"
)

// Point is a position on the dial's drawing plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AngleForTime converts a wall-clock time to a dial angle in radians.
// 12:00 points up (-π/2) and the hand sweeps clockwise, one full turn per
// 12 hours.
func AngleForTime(hour, minute int) float64 {
	h := float64(hour%12) + float64(minute)/60
	return -math.Pi/2 + 2*math.Pi*h/12
}

// PointOnCircle places an angle on the circle of the given radius and center.
func PointOnCircle(angle, radius float64, center Point) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// IconPosition returns the dial position of an instant, using its hour and
// minute components in the instant's own zone.
func IconPosition(t time.Time, radius float64, center Point) Point {
	angle := AngleForTime(t.Hour(), t.Minute())
	return PointOnCircle(angle, radius, center)
}
