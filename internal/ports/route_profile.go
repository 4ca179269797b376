package ports

import "fmt"

// Contract for mapping cumulative trail distance to latitude.
//
// Implementations must answer arbitrary distances in [0, TotalDistance]
// (typically by interpolating between samples). Latitude is not required
// to be monotone in distance; trails bend.
type RouteProfile interface {
	// Latitude in degrees at a cumulative distance in miles.
	// Out-of-range queries fail with a *RangeError.
	LatitudeAt(distanceMiles float64) (float64, error)
	// Total trail length in miles.
	TotalDistance() float64
}

// RangeError reports a profile query outside [0, trail length].
// The simulator treats it as a configuration error, never as a
// feasibility result.
type RangeError struct {
	DistanceMiles float64
	TrailMiles    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"route profile: distance %.2f mi outside trail range [0, %.2f]",
		e.DistanceMiles, e.TrailMiles,
	)
}
