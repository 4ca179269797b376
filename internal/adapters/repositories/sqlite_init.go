package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"trail-itinerary-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSamplesQuery := `
	CREATE TABLE IF NOT EXISTS trail_samples (
		distance_miles REAL PRIMARY KEY,
		latitude REAL NOT NULL,
		elevation_ft REAL NOT NULL,
		state TEXT NOT NULL DEFAULT ''
	);
	`

	if _, err := tx.Exec(createSamplesQuery); err != nil {
		return fmt.Errorf("init schema: create trail_samples: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TrailSampleSeed struct {
	DistanceMiles float64 `json:"distance_miles"`
	Latitude      float64 `json:"latitude"`
	ElevationFt   float64 `json:"elevation_ft"`
	State         string  `json:"state"`
}

// LoadSamplesJSON reads and validates trail samples from a JSON file.
func LoadSamplesJSON(jsonPath string) ([]domain.GeoPoint, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load samples: read %q: %w", jsonPath, err)
	}

	var data []TrailSampleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load samples: parse json: %w", err)
	}

	samples := make([]domain.GeoPoint, 0, len(data))
	for i, item := range data {
		if item.DistanceMiles < 0 {
			return nil, fmt.Errorf("load samples: negative distance at index %d: %.2f", i, item.DistanceMiles)
		}
		if item.Latitude < -90 || item.Latitude > 90 {
			return nil, fmt.Errorf("load samples: invalid latitude at index %d: %.4f", i, item.Latitude)
		}
		samples = append(samples, domain.GeoPoint{
			DistanceMiles: item.DistanceMiles,
			LatitudeDeg:   item.Latitude,
			ElevationFt:   item.ElevationFt,
			State:         item.State,
		})
	}

	return samples, nil
}

// Populate the database with trail samples from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	samples, err := LoadSamplesJSON(jsonPath)
	if err != nil {
		return fmt.Errorf("seed samples: %w", err)
	}
	return SeedSamples(db, samples)
}

// Insert or replace trail samples in bulk.
func SeedSamples(db *sql.DB, samples []domain.GeoPoint) error {
	if db == nil {
		return errors.New("seed samples: DB is nil")
	}
	if len(samples) == 0 {
		return errors.New("seed samples: no samples to insert")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed samples: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO trail_samples (
		distance_miles,
		latitude,
		elevation_ft,
		state
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed samples: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range samples {
		if _, err := stmt.Exec(p.DistanceMiles, p.LatitudeDeg, p.ElevationFt, p.State); err != nil {
			return fmt.Errorf("seed samples: insert mile %.2f: %w", p.DistanceMiles, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed samples: commit tx: %w", err)
	}

	return nil
}
