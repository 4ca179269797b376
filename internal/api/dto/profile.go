package dto

type ProfileResponse struct {
	SampleCount    int      `json:"sample_count"`
	TotalMiles     float64  `json:"total_miles"`
	StartLatitude  float64  `json:"start_latitude"`
	EndLatitude    float64  `json:"end_latitude"`
	MaxElevationFt float64  `json:"max_elevation_ft"`
	States         []string `json:"states,omitempty"`
}
