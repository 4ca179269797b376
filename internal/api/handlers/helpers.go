package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"trail-itinerary-service/internal/api/dto"
	"trail-itinerary-service/internal/domain"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeStrict decodes a single JSON object and rejects unknown fields
// and trailing content.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("body must contain only one JSON object")
	}
	return nil
}

// hikeConfigFromParams turns wire parameters into a validated HikeConfig,
// applying server defaults for optional fields. Defaulting happens here,
// at the caller boundary — the model itself never defaults silently.
func hikeConfigFromParams(p dto.HikeParams, paceMPH, trailMiles float64) (domain.HikeConfig, error) {
	strategy, err := domain.ParseStrategy(p.Strategy)
	if err != nil {
		return domain.HikeConfig{}, err
	}

	start, err := time.Parse(dateLayout, p.StartDate)
	if err != nil {
		return domain.HikeConfig{}, fmt.Errorf("parse start_date %q: want YYYY-MM-DD", p.StartDate)
	}

	cfg := domain.HikeConfig{
		StartDate:           start,
		Strategy:            strategy,
		TargetDistanceMiles: p.TargetDistanceMiles,
		PaceMPH:             paceMPH,
		BreakEfficiency:     p.BreakEfficiency,
		RestAllowanceHours:  p.RestAllowanceHours,
		MaxDays:             p.MaxDays,
		MaxPlausiblePaceMPH: p.MaxPlausiblePaceMPH,
	}

	if cfg.TargetDistanceMiles == 0 {
		cfg.TargetDistanceMiles = trailMiles
	}
	if cfg.BreakEfficiency == 0 {
		cfg.BreakEfficiency = domain.DefaultBreakEfficiency
	}
	if cfg.RestAllowanceHours == 0 {
		cfg.RestAllowanceHours = domain.DefaultRestAllowanceHours
	}
	if cfg.MaxDays == 0 {
		cfg.MaxDays = domain.DefaultMaxDays
	}
	if cfg.MaxPlausiblePaceMPH == 0 {
		cfg.MaxPlausiblePaceMPH = domain.DefaultMaxPlausiblePaceMPH
	}

	if err := cfg.Validate(); err != nil {
		return domain.HikeConfig{}, err
	}

	return cfg, nil
}

func itineraryResponse(res *domain.SimulationResult, includeDays bool) dto.ItineraryResponse {
	out := dto.ItineraryResponse{
		Feasible:          res.Feasible,
		Reason:            string(res.Reason),
		Detail:            res.Detail,
		TotalDays:         res.TotalDays,
		TotalMiles:        res.TotalMiles(),
		TotalMovingHours:  res.TotalMovingHours,
		MilesPerDay:       res.MilesPerDay(),
		AvgAvailableHours: res.AvgAvailableHours(),
		FinishDate:        res.FinishDate.Format(dateLayout),
	}

	if includeDays {
		out.Days = make([]dto.DayPlanResponse, 0, len(res.Days))
		for _, d := range res.Days {
			out.Days = append(out.Days, dto.DayPlanResponse{
				DayIndex:           d.DayIndex,
				Date:               d.Date.Format(dateLayout),
				StartDistanceMiles: d.StartDistanceMiles,
				EndDistanceMiles:   d.EndDistanceMiles,
				LatitudeDeg:        d.LatitudeDeg,
				SunriseHour:        d.SunriseHour,
				SunsetHour:         d.SunsetHour,
				DaylightHours:      d.DaylightHours,
				AvailableHours:     d.AvailableHours,
				MovingHours:        d.MovingHours,
				AchievedPaceMPH:    d.AchievedPaceMPH,
			})
		}
	}

	return out
}
