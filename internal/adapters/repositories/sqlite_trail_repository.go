package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trail-itinerary-service/internal/domain"
)

// SQLite-backed implementation of the TrailRepository port.
type SqliteTrailRepository struct{ DB *sql.DB }

func NewSqliteTrailRepository(db *sql.DB) *SqliteTrailRepository {
	return &SqliteTrailRepository{DB: db}
}

// Return all trail samples ordered by cumulative distance.
func (s *SqliteTrailRepository) ListSamples(ctx context.Context) ([]domain.GeoPoint, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite trail repository: DB is nil")
	}

	query := `
	SELECT
		distance_miles,
		latitude,
		elevation_ft,
		state
	FROM trail_samples
	ORDER BY distance_miles;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list samples: query trail_samples table: %w", err)
	}
	defer rows.Close()

	samples := make([]domain.GeoPoint, 0, 4096)
	for rows.Next() {
		var p domain.GeoPoint
		if err := rows.Scan(&p.DistanceMiles, &p.LatitudeDeg, &p.ElevationFt, &p.State); err != nil {
			return nil, fmt.Errorf("list samples: scan row: %w", err)
		}
		samples = append(samples, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list samples: row iteration: %w", err)
	}

	return samples, nil
}
