package services

import (
	"context"
	"errors"
	"fmt"

	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/platform/obs"
	"trail-itinerary-service/internal/ports"
)

// ErrSolverDivergence indicates the target duration is unreachable anywhere
// in the configured pace search interval. It is a solver configuration
// problem, distinct from a physically infeasible itinerary.
var ErrSolverDivergence = errors.New("solver: target duration unreachable within pace bounds")

// DivergenceError carries the numeric boundary that was violated.
type DivergenceError struct {
	TargetDays    int
	MinPaceMPH    float64
	MaxPaceMPH    float64
	DaysAtMinPace int
	DaysAtMaxPace int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf(
		"solver: target %d days outside achievable range [%d, %d] for pace interval [%.2f, %.2f] mph",
		e.TargetDays, e.DaysAtMaxPace, e.DaysAtMinPace, e.MinPaceMPH, e.MaxPaceMPH,
	)
}

func (e *DivergenceError) Unwrap() error { return ErrSolverDivergence }

// Bounded search interval and convergence settings for the solver.
type SolverOptions struct {
	MinPaceMPH    float64
	MaxPaceMPH    float64
	ToleranceDays int
	MaxIterations int
}

// DefaultSolverOptions returns the plausible-human-pace search interval.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MinPaceMPH:    0.5,
		MaxPaceMPH:    5.0,
		ToleranceDays: 1,
		MaxIterations: 48,
	}
}

// SolveForDuration finds a constant pace completing the trail in targetDays.
//
// It bisects on pace: more hiking hours at a higher pace always consume more
// distance, so days-to-finish is monotone non-increasing in pace and binary
// search within [MinPaceMPH, MaxPaceMPH] is justified. Each candidate pace is
// evaluated by a full simulator run under the fixed-mph policy; runs that hit
// the max-day guard count as "slower than any target".
//
// Returns the solved pace and the simulation result at that pace. Fails with
// a *DivergenceError (wrapping ErrSolverDivergence) when no pace in the
// interval lands within ToleranceDays of the target.
func SolveForDuration(
	ctx context.Context,
	cfg domain.HikeConfig,
	targetDays int,
	profile ports.RouteProfile,
	daylight ports.DaylightProvider,
	opts SolverOptions,
) (_ float64, _ *domain.SimulationResult, err error) {
	defer obs.Time(ctx, "solver.SolveForDuration")(&err)

	if targetDays <= 0 {
		return 0, nil, fmt.Errorf("solve for duration: target days must be positive, got %d", targetDays)
	}
	if opts.MinPaceMPH <= 0 || opts.MaxPaceMPH <= opts.MinPaceMPH {
		return 0, nil, fmt.Errorf(
			"solve for duration: invalid pace interval [%.2f, %.2f]",
			opts.MinPaceMPH, opts.MaxPaceMPH,
		)
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolverOptions().MaxIterations
	}

	lo, hi := opts.MinPaceMPH, opts.MaxPaceMPH

	loRes, err := simulateAtPace(ctx, cfg, lo, profile, daylight)
	if err != nil {
		return 0, nil, fmt.Errorf("solve for duration: at min pace %.2f: %w", lo, err)
	}
	hiRes, err := simulateAtPace(ctx, cfg, hi, profile, daylight)
	if err != nil {
		return 0, nil, fmt.Errorf("solve for duration: at max pace %.2f: %w", hi, err)
	}

	daysLo := effectiveDays(loRes, cfg.MaxDays)
	daysHi := effectiveDays(hiRes, cfg.MaxDays)

	// The target must sit inside [daysHi, daysLo]; anything else cannot be
	// bracketed by bisection.
	if targetDays < daysHi-opts.ToleranceDays || targetDays > daysLo+opts.ToleranceDays {
		return 0, nil, &DivergenceError{
			TargetDays:    targetDays,
			MinPaceMPH:    lo,
			MaxPaceMPH:    hi,
			DaysAtMinPace: daysLo,
			DaysAtMaxPace: daysHi,
		}
	}

	if within(daysLo, targetDays, opts.ToleranceDays) {
		return lo, loRes, nil
	}
	if within(daysHi, targetDays, opts.ToleranceDays) {
		return hi, hiRes, nil
	}

	var best *domain.SimulationResult
	bestPace := 0.0

	for i := 0; i < opts.MaxIterations; i++ {
		mid := (lo + hi) / 2

		midRes, err := simulateAtPace(ctx, cfg, mid, profile, daylight)
		if err != nil {
			return 0, nil, fmt.Errorf("solve for duration: at pace %.2f: %w", mid, err)
		}
		days := effectiveDays(midRes, cfg.MaxDays)

		if within(days, targetDays, opts.ToleranceDays) {
			best = midRes
			bestPace = mid
			break
		}

		if days > targetDays {
			lo = mid // too slow
		} else {
			hi = mid // faster than needed
		}
	}

	if best == nil {
		return 0, nil, &DivergenceError{
			TargetDays:    targetDays,
			MinPaceMPH:    opts.MinPaceMPH,
			MaxPaceMPH:    opts.MaxPaceMPH,
			DaysAtMinPace: daysLo,
			DaysAtMaxPace: daysHi,
		}
	}

	return bestPace, best, nil
}

// MinimumDuration reports the fastest achievable itinerary at the pace
// ceiling of the search interval.
func MinimumDuration(
	ctx context.Context,
	cfg domain.HikeConfig,
	profile ports.RouteProfile,
	daylight ports.DaylightProvider,
	opts SolverOptions,
) (*domain.SimulationResult, error) {
	if opts.MaxPaceMPH <= 0 {
		return nil, fmt.Errorf("minimum duration: max pace must be positive, got %.2f", opts.MaxPaceMPH)
	}
	res, err := simulateAtPace(ctx, cfg, opts.MaxPaceMPH, profile, daylight)
	if err != nil {
		return nil, fmt.Errorf("minimum duration: %w", err)
	}
	return res, nil
}

func simulateAtPace(
	ctx context.Context,
	cfg domain.HikeConfig,
	paceMPH float64,
	profile ports.RouteProfile,
	daylight ports.DaylightProvider,
) (*domain.SimulationResult, error) {
	cfg.PaceMPH = paceMPH
	// Candidate paces may exceed the plausibility ceiling during the search;
	// lift it so the ceiling flag does not mask the day count.
	if cfg.MaxPlausiblePaceMPH < paceMPH {
		cfg.MaxPlausiblePaceMPH = paceMPH
	}
	return Simulate(ctx, cfg, profile, daylight)
}

// Day count used for bisection ordering. Runs stopped by the max-day guard
// never finished, so they sort past every finishing run.
func effectiveDays(res *domain.SimulationResult, maxDays int) int {
	if !res.Feasible && res.Reason != "" && res.Reason != domain.ReasonPaceAboveCeiling {
		return maxDays + 1
	}
	return res.TotalDays
}

func within(days, target, tol int) bool {
	diff := days - target
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
