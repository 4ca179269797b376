package profile

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/ports"
)

// TableProfile implements the RouteProfile port over a table of
// (cumulative distance, latitude) samples with linear interpolation
// between neighbors. Samples are copied and sorted at construction;
// the profile is immutable afterwards and safe for concurrent use.
type TableProfile struct {
	samples []domain.GeoPoint
}

func NewTableProfile(samples []domain.GeoPoint) (*TableProfile, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("table profile: need at least 2 samples, got %d", len(samples))
	}

	sorted := make([]domain.GeoPoint, len(samples))
	copy(sorted, samples)
	slices.SortFunc(sorted, func(a, b domain.GeoPoint) int {
		switch {
		case a.DistanceMiles < b.DistanceMiles:
			return -1
		case a.DistanceMiles > b.DistanceMiles:
			return 1
		}
		return 0
	})

	if sorted[0].DistanceMiles != 0 {
		return nil, fmt.Errorf(
			"table profile: samples must start at mile 0, got %.2f",
			sorted[0].DistanceMiles,
		)
	}
	if sorted[len(sorted)-1].DistanceMiles <= 0 {
		return nil, errors.New("table profile: trail length must be positive")
	}

	return &TableProfile{samples: sorted}, nil
}

// Total trail length in miles.
func (t *TableProfile) TotalDistance() float64 {
	return t.samples[len(t.samples)-1].DistanceMiles
}

// Latitude at an arbitrary cumulative distance, linearly interpolated
// between the two neighboring samples. Queries outside [0, TotalDistance]
// fail with a *ports.RangeError.
func (t *TableProfile) LatitudeAt(distanceMiles float64) (float64, error) {
	p, err := t.at(distanceMiles)
	if err != nil {
		return 0, err
	}
	return p.LatitudeDeg, nil
}

// ElevationAt reports interpolated elevation in feet at a cumulative distance.
// Elevation is consumed by reporting, never by the simulator core.
func (t *TableProfile) ElevationAt(distanceMiles float64) (float64, error) {
	p, err := t.at(distanceMiles)
	if err != nil {
		return 0, err
	}
	return p.ElevationFt, nil
}

// Samples returns the underlying ordered sample table (copy).
func (t *TableProfile) Samples() []domain.GeoPoint {
	out := make([]domain.GeoPoint, len(t.samples))
	copy(out, t.samples)
	return out
}

func (t *TableProfile) at(distanceMiles float64) (domain.GeoPoint, error) {
	total := t.TotalDistance()
	if distanceMiles < 0 || distanceMiles > total {
		return domain.GeoPoint{}, &ports.RangeError{
			DistanceMiles: distanceMiles,
			TrailMiles:    total,
		}
	}

	// First sample at or past the queried distance.
	i := sort.Search(len(t.samples), func(i int) bool {
		return t.samples[i].DistanceMiles >= distanceMiles
	})

	if t.samples[i].DistanceMiles == distanceMiles {
		return t.samples[i], nil
	}

	prev, next := t.samples[i-1], t.samples[i]
	span := next.DistanceMiles - prev.DistanceMiles
	if span <= 0 {
		// Duplicate sample distances collapse to the earlier point.
		return prev, nil
	}
	frac := (distanceMiles - prev.DistanceMiles) / span

	return domain.GeoPoint{
		DistanceMiles: distanceMiles,
		LatitudeDeg:   prev.LatitudeDeg + (next.LatitudeDeg-prev.LatitudeDeg)*frac,
		ElevationFt:   prev.ElevationFt + (next.ElevationFt-prev.ElevationFt)*frac,
		State:         prev.State,
	}, nil
}
