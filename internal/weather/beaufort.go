package weather

import "math"

// beaufortScale maps wind speed in m/s to the qualitative Beaufort label.
// Buckets are the literal inclusive cutoffs used on the dial; anything that
// slips between or above them lands on the final bucket.
var beaufortScale = []struct {
	lo, hi float64
	label  string
}{
	{0, 0.59, "Штиль"},
	{0.6, 1.59, "Тихий"},
	{1.6, 3.29, "Лёгкий"},
	{3.3, 5.49, "Слабый"},
	{5.5, 7.99, "Умеренный"},
	{8.0, 10.79, "Свежий"},
	{10.8, 13.89, "Сильный"},
	{13.9, 17.19, "Крепкий"},
	{17.2, 20.79, "Очень крепкий"},
	{20.8, 24.49, "Шторм"},
	{24.5, 28.49, "Сильный шторм"},
	{28.5, 32.69, "Жестокий шторм"},
}

const beaufortHurricane = "Ураган"

// BeaufortLabel classifies a wind speed in m/s on the 13-step Beaufort scale.
func BeaufortLabel(speedMS float64) string {
	for _, b := range beaufortScale {
		if speedMS >= b.lo && speedMS <= b.hi {
			return b.label
		}
	}
	return beaufortHurricane
}

// windDirections are the 16 compass points, clockwise from north.
var windDirections = [16]string{
	"С", "ССВ", "СВ", "ВСВ", "В", "ВЮВ", "ЮВ", "ЮЮВ",
	"Ю", "ЮЮЗ", "ЮЗ", "ЗЮЗ", "З", "ЗСЗ", "СЗ", "ССЗ",
}

// WindDirection returns the compass-point label for a wind direction given
// in degrees from north.
func WindDirection(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	idx := int((d+11.25)/22.5) % 16
	return windDirections[idx]
}
