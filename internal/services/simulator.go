package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/ports"
)

// Consecutive days with no usable hiking window tolerated before the run
// is declared infeasible. Cannot trigger at trail latitudes; guards
// degenerate configurations.
const maxZeroDaylightDays = 3

// Simulate advances a hiker day by day until the target distance is covered
// or the max-day guard trips.
//
// Each day the hiker's current position determines latitude, latitude and
// calendar date determine the daylight window, and the window determines the
// day's distance under the fixed-mph pace policy. The day is committed before
// the next day's latitude is looked up. This one-day-granularity sequential
// coupling is what resolves the circular latitude/date/pace dependency
// without a closed-form solution; the step size is a deliberate design
// choice, kept at one day so calibration results stay reproducible.
//
// Infeasibility (too slow to finish, no usable daylight) is reported in the
// result, not as an error. Errors are reserved for configuration problems:
// an invalid HikeConfig, a profile query out of range, or a failing provider.
func Simulate(
	ctx context.Context,
	cfg domain.HikeConfig,
	profile ports.RouteProfile,
	daylight ports.DaylightProvider,
) (*domain.SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("simulate: route profile must be non-nil")
	}
	if daylight == nil {
		return nil, fmt.Errorf("simulate: daylight provider must be non-nil")
	}

	res := &domain.SimulationResult{
		Config: cfg,
		Days:   []domain.DayPlan{},
	}

	currentDistance := 0.0
	currentDate := cfg.StartDate
	zeroDaylightRun := 0

	for dayIndex := 0; currentDistance < cfg.TargetDistanceMiles; dayIndex++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulate: day %d: %w", dayIndex, err)
		}

		if dayIndex >= cfg.MaxDays {
			res.Feasible = false
			res.Reason = domain.ReasonMaxDaysExceeded
			res.Detail = fmt.Sprintf(
				"covered %.1f of %.1f mi in %d days (max %d)",
				currentDistance, cfg.TargetDistanceMiles, dayIndex, cfg.MaxDays,
			)
			finalize(res, currentDate)
			return res, nil
		}

		// Latitude at the current position, not yet advanced.
		lat, err := profile.LatitudeAt(currentDistance)
		if err != nil {
			return nil, fmt.Errorf("simulate: day %d at mile %.2f: %w", dayIndex, currentDistance, err)
		}

		window, err := daylight.Daylight(ctx, lat, currentDate.YearDay())
		if err != nil {
			return nil, fmt.Errorf("simulate: day %d daylight at lat %.4f: %w", dayIndex, lat, err)
		}

		available := availableHours(cfg, window)

		if available <= 0 {
			zeroDaylightRun++
			if zeroDaylightRun > maxZeroDaylightDays {
				res.Feasible = false
				res.Reason = domain.ReasonNoUsableDaylight
				res.Detail = fmt.Sprintf(
					"available hiking hours %.2f on %s at lat %.2f for %d consecutive days",
					available, currentDate.Format("2006-01-02"), lat, zeroDaylightRun,
				)
				finalize(res, currentDate)
				return res, nil
			}
		} else {
			zeroDaylightRun = 0
		}

		miles := cfg.PaceMPH * math.Max(available, 0)
		// Cap the final day so the itinerary never overshoots the terminus.
		if remaining := cfg.TargetDistanceMiles - currentDistance; miles > remaining {
			miles = remaining
		}

		movingHours := 0.0
		achievedPace := 0.0
		if miles > 0 {
			movingHours = miles / cfg.PaceMPH
			achievedPace = cfg.PaceMPH
		}

		res.Days = append(res.Days, domain.DayPlan{
			DayIndex:           dayIndex,
			Date:               currentDate,
			StartDistanceMiles: currentDistance,
			EndDistanceMiles:   currentDistance + miles,
			LatitudeDeg:        lat,
			SunriseHour:        window.SunriseHour,
			SunsetHour:         window.SunsetHour,
			DaylightHours:      window.DaylightHours,
			AvailableHours:     available,
			MovingHours:        movingHours,
			AchievedPaceMPH:    achievedPace,
		})

		currentDistance += miles
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	res.Feasible = true
	if cfg.PaceMPH > cfg.MaxPlausiblePaceMPH {
		// The itinerary exists arithmetically but assumes a pace past the
		// plausibility ceiling, so it is flagged rather than trusted.
		res.Feasible = false
		res.Reason = domain.ReasonPaceAboveCeiling
		res.Detail = fmt.Sprintf(
			"pace %.2f mph exceeds configured ceiling %.2f mph",
			cfg.PaceMPH, cfg.MaxPlausiblePaceMPH,
		)
	}
	finalize(res, currentDate)
	return res, nil
}

// Usable hiking hours for one day under the configured strategy.
func availableHours(cfg domain.HikeConfig, window ports.DaylightResult) float64 {
	switch cfg.Strategy {
	case domain.StrategyRoundTheClock:
		return 24 - cfg.RestAllowanceHours
	default:
		return window.UsableHours * cfg.BreakEfficiency
	}
}

func finalize(res *domain.SimulationResult, endDate time.Time) {
	res.TotalDays = len(res.Days)
	res.FinishDate = endDate
	total := 0.0
	for _, d := range res.Days {
		total += d.MovingHours
	}
	res.TotalMovingHours = total
}
