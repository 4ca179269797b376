package dto

// Shared hike parameters accepted by the simulate/solve/compare endpoints.
// Dates are "YYYY-MM-DD". Zero-valued optional fields take server defaults;
// target_distance_miles defaults to the full loaded trail.
type HikeParams struct {
	Strategy            string  `json:"strategy"`
	StartDate           string  `json:"start_date"`
	TargetDistanceMiles float64 `json:"target_distance_miles"`
	BreakEfficiency     float64 `json:"break_efficiency"`
	RestAllowanceHours  float64 `json:"rest_allowance_hours"`
	MaxDays             int     `json:"max_days"`
	MaxPlausiblePaceMPH float64 `json:"max_plausible_pace_mph"`
}

type ItineraryRequest struct {
	HikeParams
	PaceMPH     float64 `json:"pace_mph"`
	IncludeDays bool    `json:"include_days"`
}

type DayPlanResponse struct {
	DayIndex           int     `json:"day_index"`
	Date               string  `json:"date"`
	StartDistanceMiles float64 `json:"start_distance_miles"`
	EndDistanceMiles   float64 `json:"end_distance_miles"`
	LatitudeDeg        float64 `json:"latitude_deg"`
	SunriseHour        float64 `json:"sunrise_hour"`
	SunsetHour         float64 `json:"sunset_hour"`
	DaylightHours      float64 `json:"daylight_hours"`
	AvailableHours     float64 `json:"available_hours"`
	MovingHours        float64 `json:"moving_hours"`
	AchievedPaceMPH    float64 `json:"achieved_pace_mph"`
}

type ItineraryResponse struct {
	Feasible          bool              `json:"feasible"`
	Reason            string            `json:"reason,omitempty"`
	Detail            string            `json:"detail,omitempty"`
	TotalDays         int               `json:"total_days"`
	TotalMiles        float64           `json:"total_miles"`
	TotalMovingHours  float64           `json:"total_moving_hours"`
	MilesPerDay       float64           `json:"miles_per_day"`
	AvgAvailableHours float64           `json:"avg_available_hours"`
	FinishDate        string            `json:"finish_date"`
	Days              []DayPlanResponse `json:"days,omitempty"`
}
