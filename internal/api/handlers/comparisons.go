package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"trail-itinerary-service/internal/api/dto"
	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/ports"
	"trail-itinerary-service/internal/services"
)

const maxComparisonCases = 24

// ComparisonHandler runs the simulator across a strategy/start-date matrix.
type ComparisonHandler struct {
	Profile  ports.RouteProfile
	Daylight ports.DaylightProvider
	Workers  int
}

func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ComparisonRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Cases) == 0 {
		writeError(w, r, http.StatusBadRequest, "cases must not be empty")
		return
	}
	if len(req.Cases) > maxComparisonCases {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("at most %d cases per comparison", maxComparisonCases))
		return
	}

	cases := make([]services.ComparisonCase, 0, len(req.Cases))
	for i, c := range req.Cases {
		strategy, err := domain.ParseStrategy(c.Strategy)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("case %d: %v", i, err))
			return
		}
		start, err := time.Parse(dateLayout, c.StartDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest,
				fmt.Sprintf("case %d: parse start_date %q: want YYYY-MM-DD", i, c.StartDate))
			return
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("%s %s", c.Strategy, c.StartDate)
		}
		cases = append(cases, services.ComparisonCase{
			Name:      name,
			Strategy:  strategy,
			StartDate: start,
		})
	}

	// The base config carries strategy/start placeholders; each case
	// overrides them. Use the first case so validation has real values.
	base := req.HikeParams
	base.Strategy = req.Cases[0].Strategy
	base.StartDate = req.Cases[0].StartDate

	cfg, err := hikeConfigFromParams(base, req.PaceMPH, h.Profile.TotalDistance())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := services.Compare(r.Context(), cfg, cases, h.Profile, h.Daylight, h.Workers)
	if err != nil {
		var rangeErr *ports.RangeError
		if errors.As(err, &rangeErr) {
			writeError(w, r, http.StatusBadRequest, rangeErr.Error())
			return
		}
		log.Printf("compare failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ComparisonResponse{Rows: make([]dto.ComparisonRowResponse, 0, len(rows))}
	for _, row := range rows {
		res.Rows = append(res.Rows, dto.ComparisonRowResponse{
			Name:              row.Name,
			Strategy:          string(row.Strategy),
			StartDate:         row.StartDate.Format(dateLayout),
			FinishDate:        row.FinishDate.Format(dateLayout),
			TotalDays:         row.TotalDays,
			TotalMiles:        row.TotalMiles,
			MilesPerDay:       row.MilesPerDay,
			AvgAvailableHours: row.AvgAvailableHours,
			Feasible:          row.Feasible,
			Reason:            string(row.Reason),
			Detail:            row.Detail,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
