package domain

import (
	"errors"
	"fmt"
	"time"
)

// Hiking strategy determining how many hours per day are usable for movement.
type Strategy string

const (
	// Near-continuous movement with a minimal daily rest allowance,
	// independent of daylight.
	StrategyRoundTheClock Strategy = "round_the_clock"
	// Movement restricted to the computed daylight window each day.
	StrategyDaylightOnly Strategy = "daylight_only"
)

// ParseStrategy converts a wire/config string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRoundTheClock, StrategyDaylightOnly:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("parse strategy: unknown strategy %q", s)
}

// Defaults applied by callers (handlers, composition roots) before a config
// reaches the simulator. The model itself never defaults silently.
const (
	DefaultBreakEfficiency     = 0.75
	DefaultRestAllowanceHours  = 1.5
	DefaultMaxDays             = 400
	DefaultMaxPlausiblePaceMPH = 5.0
)

// Configuration for a single simulated hike.
//
// PaceMPH is the fixed target pace (the fixed-mph pace policy). The
// target-duration policy is answered by the solver, which searches over
// fixed-mph configurations rather than extending this struct.
type HikeConfig struct {
	StartDate           time.Time
	Strategy            Strategy
	TargetDistanceMiles float64

	PaceMPH float64

	// Fraction of the usable daylight window spent actually moving,
	// net of rest, navigation and camp time. Must be in (0, 1].
	BreakEfficiency float64

	// Daily non-moving allowance for the round-the-clock strategy.
	RestAllowanceHours float64

	// Non-convergence guard: the simulator aborts as infeasible once
	// this many days have been simulated without finishing.
	MaxDays int

	// Feasibility ceiling, not a hard error: itineraries requiring a
	// faster pace are flagged infeasible rather than rejected.
	MaxPlausiblePaceMPH float64
}

// Validate checks that the configuration is complete and physically sane.
func (c HikeConfig) Validate() error {
	if c.StartDate.IsZero() {
		return errors.New("hike config: start date is required")
	}
	if c.Strategy != StrategyRoundTheClock && c.Strategy != StrategyDaylightOnly {
		return fmt.Errorf("hike config: unknown strategy %q", c.Strategy)
	}
	if c.TargetDistanceMiles <= 0 {
		return fmt.Errorf("hike config: target distance must be positive, got %.2f", c.TargetDistanceMiles)
	}
	if c.PaceMPH <= 0 {
		return fmt.Errorf("hike config: pace must be positive, got %.2f", c.PaceMPH)
	}
	if c.BreakEfficiency <= 0 || c.BreakEfficiency > 1 {
		return fmt.Errorf("hike config: break efficiency must be in (0, 1], got %.2f", c.BreakEfficiency)
	}
	if c.RestAllowanceHours < 0 || c.RestAllowanceHours >= 24 {
		return fmt.Errorf("hike config: rest allowance must be in [0, 24) hours, got %.2f", c.RestAllowanceHours)
	}
	if c.MaxDays <= 0 {
		return fmt.Errorf("hike config: max days must be positive, got %d", c.MaxDays)
	}
	if c.MaxPlausiblePaceMPH <= 0 {
		return fmt.Errorf("hike config: max plausible pace must be positive, got %.2f", c.MaxPlausiblePaceMPH)
	}
	return nil
}
