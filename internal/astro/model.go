package astro

import (
	"context"

	"trail-itinerary-service/internal/ports"
)

// Model adapts the pure Daylight function to the DaylightProvider port.
type Model struct {
	Opts Options
}

func NewModel(opts Options) *Model {
	return &Model{Opts: opts}
}

func (m *Model) Daylight(ctx context.Context, latitudeDeg float64, dayOfYear int) (ports.DaylightResult, error) {
	r := Daylight(latitudeDeg, dayOfYear, m.Opts)
	return ports.DaylightResult{
		SunriseHour:   r.SunriseHour,
		SunsetHour:    r.SunsetHour,
		DaylightHours: r.DaylightHours,
		UsableHours:   r.UsableHours,
	}, nil
}
