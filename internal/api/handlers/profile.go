package handlers

import (
	"net/http"

	"trail-itinerary-service/internal/adapters/profile"
	"trail-itinerary-service/internal/api/dto"
)

// ProfileHandler exposes read-only metadata about the loaded trail profile.
type ProfileHandler struct {
	Profile *profile.TableProfile
}

func (h *ProfileHandler) Describe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	samples := h.Profile.Samples()

	res := dto.ProfileResponse{
		SampleCount:   len(samples),
		TotalMiles:    h.Profile.TotalDistance(),
		StartLatitude: samples[0].LatitudeDeg,
		EndLatitude:   samples[len(samples)-1].LatitudeDeg,
	}

	seen := map[string]struct{}{}
	for _, p := range samples {
		if p.ElevationFt > res.MaxElevationFt {
			res.MaxElevationFt = p.ElevationFt
		}
		if p.State != "" {
			if _, ok := seen[p.State]; !ok {
				seen[p.State] = struct{}{}
				res.States = append(res.States, p.State)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
