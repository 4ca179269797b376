package handlers

import (
	"errors"
	"log"
	"net/http"

	"trail-itinerary-service/internal/api/dto"
	"trail-itinerary-service/internal/ports"
	"trail-itinerary-service/internal/services"
)

// ItineraryHandler exposes daylight-constrained hike simulation.
type ItineraryHandler struct {
	Profile  ports.RouteProfile
	Daylight ports.DaylightProvider
}

// Simulate runs one simulator pass for the requested configuration and
// returns the itinerary. Infeasible itineraries are 200 responses with
// feasible=false; only malformed configurations are client errors.
func (h *ItineraryHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ItineraryRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := hikeConfigFromParams(req.HikeParams, req.PaceMPH, h.Profile.TotalDistance())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := services.Simulate(r.Context(), cfg, h.Profile, h.Daylight)
	if err != nil {
		var rangeErr *ports.RangeError
		if errors.As(err, &rangeErr) {
			writeError(w, r, http.StatusBadRequest, rangeErr.Error())
			return
		}
		log.Printf("simulate failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(res, req.IncludeDays))
}
