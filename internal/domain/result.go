package domain

import "time"

// Reason codes for itineraries that cannot be completed as configured.
// Infeasibility is an expected, meaningful outcome and is reported in the
// result rather than returned as an error.
type InfeasibilityReason string

const (
	ReasonMaxDaysExceeded  InfeasibilityReason = "max-days-exceeded"
	ReasonNoUsableDaylight InfeasibilityReason = "no-usable-daylight"
	ReasonPaceAboveCeiling InfeasibilityReason = "pace-above-ceiling"
)

// Outcome of one simulator run.
//
// The ordered Days sequence is the itinerary. A SimulationResult is owned
// exclusively by the caller that requested the run; the simulator retains
// no reference to it, so independent runs share no mutable state.
type SimulationResult struct {
	Config HikeConfig
	Days   []DayPlan

	TotalDays        int
	TotalMovingHours float64
	FinishDate       time.Time

	Feasible bool
	Reason   InfeasibilityReason
	// Human-readable detail naming the numeric boundary that was violated.
	Detail string
}

// Total miles covered across all simulated days.
func (r *SimulationResult) TotalMiles() float64 {
	total := 0.0
	for _, d := range r.Days {
		total += d.Miles()
	}
	return total
}

// Average miles covered per simulated day. Zero for an empty itinerary.
func (r *SimulationResult) MilesPerDay() float64 {
	if len(r.Days) == 0 {
		return 0
	}
	return r.TotalMiles() / float64(len(r.Days))
}

// Average usable hiking hours per simulated day. Zero for an empty itinerary.
func (r *SimulationResult) AvgAvailableHours() float64 {
	if len(r.Days) == 0 {
		return 0
	}
	total := 0.0
	for _, d := range r.Days {
		total += d.AvailableHours
	}
	return total / float64(len(r.Days))
}
