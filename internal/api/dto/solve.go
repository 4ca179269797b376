package dto

type SolveRequest struct {
	HikeParams
	TargetDays    int     `json:"target_days"`
	MinPaceMPH    float64 `json:"min_pace_mph"`
	MaxPaceMPH    float64 `json:"max_pace_mph"`
	ToleranceDays int     `json:"tolerance_days"`
}

type SolveResponse struct {
	PaceMPH   float64           `json:"pace_mph"`
	Itinerary ItineraryResponse `json:"itinerary"`
}
