package ports

import (
	"context"

	"trail-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving trail sample points from a data source.
type TrailRepository interface {
	// Retrieve all trail samples ordered by cumulative distance.
	ListSamples(ctx context.Context) ([]domain.GeoPoint, error)
}
