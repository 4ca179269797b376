package api

import (
	"net/http"

	"trail-itinerary-service/internal/adapters/profile"
	"trail-itinerary-service/internal/api/handlers"
	"trail-itinerary-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root: handlers see only ports,
// never concrete adapters (the profile endpoint is the one exception, since
// sample metadata is a property of the table itself).
func NewRouter(trail *profile.TableProfile, daylight ports.DaylightProvider, workers int) http.Handler {
	mux := http.NewServeMux()

	itineraryHandler := &handlers.ItineraryHandler{Profile: trail, Daylight: daylight}
	solveHandler := &handlers.SolveHandler{Profile: trail, Daylight: daylight}
	comparisonHandler := &handlers.ComparisonHandler{Profile: trail, Daylight: daylight, Workers: workers}
	profileHandler := &handlers.ProfileHandler{Profile: trail}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/profile", profileHandler.Describe)
	mux.HandleFunc("/itineraries", itineraryHandler.Simulate)
	mux.HandleFunc("/solve", solveHandler.Solve)
	mux.HandleFunc("/comparisons", comparisonHandler.Compare)

	return loggingMiddleware(mux)
}
