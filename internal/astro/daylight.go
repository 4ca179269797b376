// Package astro computes sunrise, sunset and day length from latitude and
// day-of-year using the simplified solar declination / hour angle model.
// All functions are pure and deterministic: identical inputs always yield
// identical outputs, which makes results safe to memoize.
package astro

import "math"

// Civil twilight before sunrise and after sunset is usable low-light
// hiking time; one hour total is the conventional allowance.
const DefaultTwilightExtensionHours = 1.0

// Latitudes are clamped just short of the poles so the hour-angle
// tangent term stays finite. Trail latitudes never get close.
const maxLatitudeDeg = 89.9

type Options struct {
	// Usable low-light hours added on top of sunrise-to-sunset daylight.
	TwilightExtensionHours float64
}

// Result of a daylight computation. Sunrise and sunset are decimal solar
// hours (12.0 = solar noon).
type Result struct {
	SunriseHour   float64
	SunsetHour    float64
	DaylightHours float64
	TwilightHours float64
	// Daylight plus twilight, clamped to [0, 24].
	UsableHours float64

	// Boundary conditions: the hour-angle cosine left [-1, 1] and was
	// clamped. Not reachable at trail latitudes.
	PolarDay   bool
	PolarNight bool
}

// Daylight computes the daylight window at a latitude (degrees) and
// day of year (1-366).
//
// Declination follows the standard seasonal approximation
// 23.45° · sin(360/365 · (doy − 81)), and the half-day hour angle H comes
// from cos H = −tan(lat) · tan(decl). The cosine is clamped to [−1, 1] so
// polar day and polar night degrade to 24 h and 0 h instead of a numeric
// domain fault.
func Daylight(latitudeDeg float64, dayOfYear int, opts Options) Result {
	lat := latitudeDeg
	if lat > maxLatitudeDeg {
		lat = maxLatitudeDeg
	}
	if lat < -maxLatitudeDeg {
		lat = -maxLatitudeDeg
	}

	declDeg := 23.45 * math.Sin(radians(360.0/365.0*(float64(dayOfYear)-81)))

	cosH := -math.Tan(radians(lat)) * math.Tan(radians(declDeg))

	var res Result
	switch {
	case cosH >= 1:
		res.PolarNight = true
		cosH = 1
	case cosH <= -1:
		res.PolarDay = true
		cosH = -1
	}

	hourAngleDeg := degrees(math.Acos(cosH))
	halfDay := hourAngleDeg / 15.0

	res.SunriseHour = 12.0 - halfDay
	res.SunsetHour = 12.0 + halfDay
	res.DaylightHours = 2.0 * halfDay

	res.TwilightHours = opts.TwilightExtensionHours
	if res.TwilightHours < 0 {
		res.TwilightHours = 0
	}

	res.UsableHours = res.DaylightHours + res.TwilightHours
	if res.UsableHours > 24 {
		res.UsableHours = 24
	}

	return res
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
