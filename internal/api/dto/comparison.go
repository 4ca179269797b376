package dto

type ComparisonCaseRequest struct {
	Name      string `json:"name"`
	Strategy  string `json:"strategy"`
	StartDate string `json:"start_date"`
}

type ComparisonRequest struct {
	HikeParams
	PaceMPH float64                 `json:"pace_mph"`
	Cases   []ComparisonCaseRequest `json:"cases"`
}

type ComparisonRowResponse struct {
	Name              string  `json:"name"`
	Strategy          string  `json:"strategy"`
	StartDate         string  `json:"start_date"`
	FinishDate        string  `json:"finish_date"`
	TotalDays         int     `json:"total_days"`
	TotalMiles        float64 `json:"total_miles"`
	MilesPerDay       float64 `json:"miles_per_day"`
	AvgAvailableHours float64 `json:"avg_available_hours"`
	Feasible          bool    `json:"feasible"`
	Reason            string  `json:"reason,omitempty"`
	Detail            string  `json:"detail,omitempty"`
}

type ComparisonResponse struct {
	Rows []ComparisonRowResponse `json:"rows"`
}
