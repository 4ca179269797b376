package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"trail-itinerary-service/internal/adapters/arcgis"
	"trail-itinerary-service/internal/adapters/profile"
	"trail-itinerary-service/internal/adapters/repositories"
	"trail-itinerary-service/internal/config"
	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/platform/db"
)

// dbtool initializes the Postgres trail-sample store and seeds it from one
// of three sources: the official ArcGIS centerline, a JSON seed file, or
// the deterministic synthetic Appalachian profile.
func main() {
	source := flag.String("source", "synthetic", "sample source: synthetic | json | arcgis")
	spacing := flag.Float64("spacing", 0.5, "sample spacing in miles for the synthetic profile")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPostgres(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	samples, err := loadSamples(*source, *spacing)
	if err != nil {
		log.Fatalf("loading samples failed: %v", err)
	}

	log.Printf("Seeding %d trail samples...", len(samples))
	if err := repositories.SeedSamplesPostgres(conn, samples); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func loadSamples(source string, spacingMiles float64) ([]domain.GeoPoint, error) {
	switch source {
	case "synthetic":
		return profile.AppalachianSamples(spacingMiles), nil
	case "json":
		seedPath := config.Get("SEED_PATH", "data/seeds/trail_samples.json")
		return repositories.LoadSamplesJSON(seedPath)
	case "arcgis":
		serviceURL := config.Get("ARCGIS_SERVICE_URL", arcgis.DefaultServiceURL)
		client := arcgis.NewClient(serviceURL)
		return client.FetchCenterline(context.Background())
	}
	log.Fatalf("unknown source %q (want synthetic, json or arcgis)", source)
	return nil, nil
}
