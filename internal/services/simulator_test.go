package services

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"trail-itinerary-service/internal/adapters/profile"
	"trail-itinerary-service/internal/astro"
	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/ports"
)

// Constant-latitude trail for exact-arithmetic tests.
type flatProfile struct {
	lat   float64
	miles float64
}

func (p flatProfile) LatitudeAt(d float64) (float64, error) {
	if d < 0 || d > p.miles {
		return 0, &ports.RangeError{DistanceMiles: d, TrailMiles: p.miles}
	}
	return p.lat, nil
}

func (p flatProfile) TotalDistance() float64 { return p.miles }

// Season-independent daylight window for exact-arithmetic tests.
type fixedDaylight struct{ usable float64 }

func (f fixedDaylight) Daylight(ctx context.Context, lat float64, doy int) (ports.DaylightResult, error) {
	return ports.DaylightResult{
		SunriseHour:   6,
		SunsetHour:    18,
		DaylightHours: 12,
		UsableHours:   f.usable,
	}, nil
}

func baseConfig(strategy domain.Strategy, paceMPH, miles float64) domain.HikeConfig {
	return domain.HikeConfig{
		StartDate:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Strategy:            strategy,
		TargetDistanceMiles: miles,
		PaceMPH:             paceMPH,
		BreakEfficiency:     domain.DefaultBreakEfficiency,
		RestAllowanceHours:  domain.DefaultRestAllowanceHours,
		MaxDays:             domain.DefaultMaxDays,
		MaxPlausiblePaceMPH: domain.DefaultMaxPlausiblePaceMPH,
	}
}

func TestSimulateDistanceConservation(t *testing.T) {
	cfg := baseConfig(domain.StrategyDaylightOnly, 2.0, 95)
	cfg.BreakEfficiency = 1.0

	// 10 usable hours at 2 mph = 20 mi/day: 4 full days plus a 15 mi day.
	res, err := Simulate(context.Background(), cfg, flatProfile{lat: 40, miles: 100}, fixedDaylight{usable: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Feasible {
		t.Fatalf("expected feasible, got reason=%s detail=%s", res.Reason, res.Detail)
	}
	if res.TotalDays != 5 {
		t.Fatalf("total days = %d, want 5", res.TotalDays)
	}
	if got := res.TotalMiles(); math.Abs(got-95) > 1e-9 {
		t.Fatalf("total miles = %.6f, want 95", got)
	}

	last := res.Days[len(res.Days)-1]
	if math.Abs(last.Miles()-15) > 1e-9 {
		t.Fatalf("final day miles = %.4f, want 15", last.Miles())
	}
	if math.Abs(last.MovingHours-7.5) > 1e-9 {
		t.Fatalf("final day moving hours = %.4f, want 7.5", last.MovingHours)
	}
	if last.AchievedPaceMPH != 2.0 {
		t.Fatalf("final day pace = %.2f, want 2.0", last.AchievedPaceMPH)
	}

	// Distance is monotone and contiguous across the itinerary.
	for i, d := range res.Days {
		if d.DayIndex != i {
			t.Fatalf("day %d has index %d", i, d.DayIndex)
		}
		if d.EndDistanceMiles < d.StartDistanceMiles {
			t.Fatalf("day %d moves backwards: %.2f -> %.2f", i, d.StartDistanceMiles, d.EndDistanceMiles)
		}
		if i > 0 && d.StartDistanceMiles != res.Days[i-1].EndDistanceMiles {
			t.Fatalf("day %d start %.2f != day %d end %.2f",
				i, d.StartDistanceMiles, i-1, res.Days[i-1].EndDistanceMiles)
		}
	}
}

func TestSimulateMaxDaysExceeded(t *testing.T) {
	cfg := baseConfig(domain.StrategyDaylightOnly, 0.1, 2190)
	cfg.MaxDays = 100

	res, err := Simulate(context.Background(), cfg, flatProfile{lat: 40, miles: 2190}, fixedDaylight{usable: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Feasible {
		t.Fatal("expected infeasible result")
	}
	if res.Reason != domain.ReasonMaxDaysExceeded {
		t.Fatalf("reason = %s, want %s", res.Reason, domain.ReasonMaxDaysExceeded)
	}
	if res.TotalDays != 100 {
		t.Fatalf("total days = %d, want 100 (the guard bound)", res.TotalDays)
	}
	if res.Detail == "" {
		t.Fatal("expected detail naming the violated bound")
	}
}

func TestSimulateNoUsableDaylight(t *testing.T) {
	cfg := baseConfig(domain.StrategyDaylightOnly, 2.0, 100)

	res, err := Simulate(context.Background(), cfg, flatProfile{lat: 40, miles: 100}, fixedDaylight{usable: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Feasible {
		t.Fatal("expected infeasible result")
	}
	if res.Reason != domain.ReasonNoUsableDaylight {
		t.Fatalf("reason = %s, want %s", res.Reason, domain.ReasonNoUsableDaylight)
	}
	if res.TotalDays != maxZeroDaylightDays {
		t.Fatalf("total days = %d, want %d zero-progress days before giving up",
			res.TotalDays, maxZeroDaylightDays)
	}
}

func TestSimulateRangeErrorIsConfigError(t *testing.T) {
	// Target beyond the trail forces a profile query out of range.
	cfg := baseConfig(domain.StrategyDaylightOnly, 2.0, 150)
	cfg.BreakEfficiency = 1.0

	_, err := Simulate(context.Background(), cfg, flatProfile{lat: 40, miles: 100}, fixedDaylight{usable: 10})
	if err == nil {
		t.Fatal("expected error for out-of-range profile query")
	}

	var rangeErr *ports.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v, want *ports.RangeError in chain", err)
	}
	if rangeErr.TrailMiles != 100 {
		t.Fatalf("range error trail miles = %.1f, want 100", rangeErr.TrailMiles)
	}
}

func TestSimulatePaceAboveCeilingIsFlagged(t *testing.T) {
	cfg := baseConfig(domain.StrategyDaylightOnly, 6.0, 100)
	cfg.MaxPlausiblePaceMPH = 5.0

	res, err := Simulate(context.Background(), cfg, flatProfile{lat: 40, miles: 100}, fixedDaylight{usable: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Feasible {
		t.Fatal("expected result flagged infeasible above the pace ceiling")
	}
	if res.Reason != domain.ReasonPaceAboveCeiling {
		t.Fatalf("reason = %s, want %s", res.Reason, domain.ReasonPaceAboveCeiling)
	}
	// The itinerary itself is still emitted in full.
	if got := res.TotalMiles(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("total miles = %.4f, want 100", got)
	}
}

func TestSimulateInvalidConfig(t *testing.T) {
	cfg := baseConfig(domain.StrategyDaylightOnly, 2.0, 100)
	cfg.BreakEfficiency = 1.5

	if _, err := Simulate(context.Background(), cfg, flatProfile{lat: 40, miles: 100}, fixedDaylight{usable: 10}); err == nil {
		t.Fatal("expected validation error for break efficiency > 1")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	trail, err := profile.AppalachianProfile(2.0)
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	model := astro.NewModel(astro.Options{TwilightExtensionHours: 1.0})

	cfg := baseConfig(domain.StrategyDaylightOnly, 2.5, trail.TotalDistance())

	first, err := Simulate(context.Background(), cfg, trail, model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Simulate(context.Background(), cfg, trail, model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical config and providers produced different results")
	}
}

// Calibration: daylight-only at 2.5 mph with the 0.75 break factor from a
// mid-March start finishes the full trail in roughly 73-90 days.
func TestSimulateDaylightOnlyCalibration(t *testing.T) {
	trail, err := profile.AppalachianProfile(1.0)
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	model := astro.NewModel(astro.Options{TwilightExtensionHours: 1.0})

	cfg := baseConfig(domain.StrategyDaylightOnly, 2.5, trail.TotalDistance())

	res, err := Simulate(context.Background(), cfg, trail, model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Feasible {
		t.Fatalf("expected feasible, got reason=%s detail=%s", res.Reason, res.Detail)
	}
	if res.TotalDays < 73 || res.TotalDays > 90 {
		t.Fatalf("total days = %d, want in [73, 90]", res.TotalDays)
	}
	if got := res.TotalMiles(); math.Abs(got-trail.TotalDistance()) > 1e-6 {
		t.Fatalf("total miles = %.6f, want %.6f", got, trail.TotalDistance())
	}
}

// Calibration: round-the-clock at the overall FKT pace reproduces the
// ~41-day reference record.
func TestSimulateRoundTheClockCalibration(t *testing.T) {
	trail, err := profile.AppalachianProfile(1.0)
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	model := astro.NewModel(astro.Options{TwilightExtensionHours: 1.0})

	cfg := baseConfig(domain.StrategyRoundTheClock, 2.39, trail.TotalDistance())

	res, err := Simulate(context.Background(), cfg, trail, model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Feasible {
		t.Fatalf("expected feasible, got reason=%s detail=%s", res.Reason, res.Detail)
	}
	if res.TotalDays < 40 || res.TotalDays > 42 {
		t.Fatalf("total days = %d, want ~41", res.TotalDays)
	}
}
