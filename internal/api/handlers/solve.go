package handlers

import (
	"errors"
	"log"
	"net/http"

	"trail-itinerary-service/internal/api/dto"
	"trail-itinerary-service/internal/ports"
	"trail-itinerary-service/internal/services"
)

// SolveHandler answers "what constant pace completes the trail in N days".
type SolveHandler struct {
	Profile  ports.RouteProfile
	Daylight ports.DaylightProvider
}

func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.TargetDays <= 0 {
		writeError(w, r, http.StatusBadRequest, "target_days must be positive")
		return
	}

	// The solver supplies candidate paces itself; seed the config with the
	// search floor so validation passes.
	opts := services.DefaultSolverOptions()
	if req.MinPaceMPH > 0 {
		opts.MinPaceMPH = req.MinPaceMPH
	}
	if req.MaxPaceMPH > 0 {
		opts.MaxPaceMPH = req.MaxPaceMPH
	}
	if req.ToleranceDays > 0 {
		opts.ToleranceDays = req.ToleranceDays
	}

	cfg, err := hikeConfigFromParams(req.HikeParams, opts.MinPaceMPH, h.Profile.TotalDistance())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pace, res, err := services.SolveForDuration(r.Context(), cfg, req.TargetDays, h.Profile, h.Daylight, opts)
	if err != nil {
		// Divergence names the violated boundary; it is a request problem,
		// not a server fault.
		if errors.Is(err, services.ErrSolverDivergence) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		var rangeErr *ports.RangeError
		if errors.As(err, &rangeErr) {
			writeError(w, r, http.StatusBadRequest, rangeErr.Error())
			return
		}
		log.Printf("solve failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SolveResponse{
		PaceMPH:   pace,
		Itinerary: itineraryResponse(res, false),
	})
}
