package ports

import "context"

// Daylight window at one latitude and date. Sunrise and sunset are
// decimal solar hours; UsableHours includes the civil twilight allowance.
type DaylightResult struct {
	SunriseHour   float64 `json:"sunrise_hour"`
	SunsetHour    float64 `json:"sunset_hour"`
	DaylightHours float64 `json:"daylight_hours"`
	UsableHours   float64 `json:"usable_hours"`
}

// Contract for retrieving the daylight window at a latitude and day of year.
type DaylightProvider interface {
	// Return the daylight window for latitude (degrees) and day of year (1-366).
	Daylight(ctx context.Context, latitudeDeg float64, dayOfYear int) (DaylightResult, error)
}

// Optional memoization layer in front of a DaylightProvider. The underlying
// model is pure, so cached entries never go stale.
type DaylightCache interface {
	Get(ctx context.Context, latitudeDeg float64, dayOfYear int) (DaylightResult, bool, error)
	Put(ctx context.Context, latitudeDeg float64, dayOfYear int, res DaylightResult) error
}
