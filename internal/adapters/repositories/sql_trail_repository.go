package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/platform/obs"
)

// SQLTrailRepository is the Postgres implementation of the TrailRepository
// port, used by the dbtool and deployments backed by a shared database.
type SQLTrailRepository struct{ DB *sql.DB }

func NewSQLTrailRepository(db *sql.DB) *SQLTrailRepository {
	return &SQLTrailRepository{DB: db}
}

// Return all trail samples ordered by cumulative distance.
func (s *SQLTrailRepository) ListSamples(ctx context.Context) (_ []domain.GeoPoint, err error) {
	defer obs.Time(ctx, "trail.repo.ListSamples")(&err)

	if s.DB == nil {
		return nil, errors.New("sql trail repository: DB is nil")
	}

	query := `
	SELECT distance_miles, latitude, elevation_ft, state
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

// Initialize the Postgres schema.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS trail_samples (
		distance_miles DOUBLE PRECISION PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		elevation_ft DOUBLE PRECISION NOT NULL,
		state TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: create trail_samples: %w", err)
	}

	return nil
}

// Insert or update trail samples in bulk (Postgres dialect).
func SeedSamplesPostgres(db *sql.DB, samples []domain.GeoPoint) error {
	if db == nil {
		return errors.New("seed postgres samples: DB is nil")
	}
	if len(samples) == 0 {
		return errors.New("seed postgres samples: no samples to insert")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres samples: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO trail_samples (distance_miles, latitude, elevation_ft, state)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (distance_miles) DO UPDATE
	SET latitude = EXCLUDED.latitude,
		elevation_ft = EXCLUDED.elevation_ft,
		state = EXCLUDED.state;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed postgres samples: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range samples {
		if _, err := stmt.Exec(p.DistanceMiles, p.LatitudeDeg, p.ElevationFt, p.State); err != nil {
			return fmt.Errorf("seed postgres samples: insert mile %.2f: %w", p.DistanceMiles, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres samples: commit tx: %w", err)
	}

	return nil
}
