package profile

import (
	"math"

	"trail-itinerary-service/internal/domain"
)

// Official Appalachian Trail length in miles. The per-state mileages below
// are approximate, so generated samples are scaled to land the terminus
// exactly on this total.
const AppalachianTrailMiles = 2190.0

// Trailhead latitudes: Springer Mountain, GA and Mount Katahdin, ME.
const (
	springerLatDeg = 34.6268
	katahdinLatDeg = 45.9044
)

type stateSegment struct {
	name      string
	miles     float64
	startElev float64
	maxElev   float64
}

// South-to-north state sequence with characteristic elevations.
var appalachianStates = []stateSegment{
	{"Georgia", 75.0, 3782, 4461},
	{"North Carolina", 95.7, 3500, 6643},
	{"Tennessee", 71.6, 3500, 6643},
	{"Virginia", 544.6, 2500, 5729},
	{"West Virginia", 4.0, 1200, 1500},
	{"Maryland", 40.9, 1000, 1880},
	{"Pennsylvania", 229.6, 800, 2080},
	{"New Jersey", 72.2, 400, 1653},
	{"New York", 88.4, 400, 1433},
	{"Connecticut", 51.6, 500, 2316},
	{"Massachusetts", 90.0, 800, 3491},
	{"Vermont", 150.0, 1000, 4393},
	{"New Hampshire", 161.0, 1500, 6288},
	{"Maine", 281.4, 1000, 5267},
}

// AppalachianSamples generates a deterministic synthetic profile of the
// Appalachian Trail at the given sample spacing in miles.
//
// Latitude runs linearly from Springer Mountain to Katahdin with trail
// progress. Elevation composes a few sine waves per state between its
// base and peak elevations, which is enough texture for reporting without
// pretending to be survey data. No randomness: identical inputs always
// produce the identical sample table, so simulator runs stay reproducible.
func AppalachianSamples(spacingMiles float64) []domain.GeoPoint {
	if spacingMiles <= 0 {
		spacingMiles = 1.0
	}

	tableMiles := 0.0
	for _, s := range appalachianStates {
		tableMiles += s.miles
	}
	scale := AppalachianTrailMiles / tableMiles

	samples := make([]domain.GeoPoint, 0, int(AppalachianTrailMiles/spacingMiles)+2)

	stateStart := 0.0
	for _, s := range appalachianStates {
		stateMiles := s.miles * scale
		for d := 0.0; d < stateMiles; d += spacingMiles {
			dist := stateStart + d
			samples = append(samples, domain.GeoPoint{
				DistanceMiles: dist,
				LatitudeDeg:   latitudeAtProgress(dist / AppalachianTrailMiles),
				ElevationFt:   stateElevation(s, d/stateMiles),
				State:         s.name,
			})
		}
		stateStart += stateMiles
	}

	// Close the table exactly on the terminus.
	last := appalachianStates[len(appalachianStates)-1]
	samples = append(samples, domain.GeoPoint{
		DistanceMiles: AppalachianTrailMiles,
		LatitudeDeg:   katahdinLatDeg,
		ElevationFt:   last.maxElev,
		State:         last.name,
	})

	return samples
}

// AppalachianProfile builds a ready-to-query synthetic AT route profile.
func AppalachianProfile(spacingMiles float64) (*TableProfile, error) {
	return NewTableProfile(AppalachianSamples(spacingMiles))
}

func latitudeAtProgress(progress float64) float64 {
	return springerLatDeg + (katahdinLatDeg-springerLatDeg)*progress
}

// Varied terrain from superimposed sine waves between the state's base
// and peak elevations.
func stateElevation(s stateSegment, stateProgress float64) float64 {
	span := s.maxElev - s.startElev
	variation := math.Sin(stateProgress*math.Pi*3)*span*0.3 +
		math.Sin(stateProgress*math.Pi*7)*span*0.2 +
		math.Sin(stateProgress*math.Pi*13)*span*0.1

	elev := s.startElev + variation
	if elev < 0 {
		elev = 0
	}
	if max := s.maxElev * 1.1; elev > max {
		elev = max
	}
	return elev
}
