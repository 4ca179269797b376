package domain

// Immutable sample point along the trail.
// Points are produced by a trail data source as an ordered sequence,
// monotonically non-decreasing in cumulative distance.
type GeoPoint struct {
	DistanceMiles float64
	LatitudeDeg   float64
	ElevationFt   float64
	State         string
}
