package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trail-itinerary-service/internal/adapters/cache"
	"trail-itinerary-service/internal/adapters/profile"
	"trail-itinerary-service/internal/adapters/repositories"
	"trail-itinerary-service/internal/api"
	"trail-itinerary-service/internal/astro"
	"trail-itinerary-service/internal/config"
	"trail-itinerary-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite sample store, solar model, optional
// redis memoization) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/trail_samples.json")
	port := config.Get("PORT", "8080")
	redisAddr := os.Getenv("REDIS_ADDR")

	spacing, err := strconv.ParseFloat(config.Get("TRAIL_SAMPLE_SPACING_MILES", "0.5"), 64)
	if err != nil || spacing <= 0 {
		log.Fatalf("invalid TRAIL_SAMPLE_SPACING_MILES: %v", err)
	}

	twilight, err := strconv.ParseFloat(
		config.Get("TWILIGHT_EXTENSION_HOURS", fmt.Sprintf("%.1f", astro.DefaultTwilightExtensionHours)), 64)
	if err != nil || twilight < 0 {
		log.Fatalf("invalid TWILIGHT_EXTENSION_HOURS: %v", err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed trail samples on startup for local runs.
	// A seed file wins; otherwise the synthetic Appalachian profile is used.
	if err := initAndSeed(db, seedPath, spacing); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteTrailRepository(db)
	samples, err := repo.ListSamples(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	trail, err := profile.NewTableProfile(samples)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("trail profile loaded samples=%d miles=%.1f", len(samples), trail.TotalDistance())

	// The solar model is pure; redis memoization is optional and only
	// worthwhile when many comparison sweeps share a deployment.
	var daylight ports.DaylightProvider = astro.NewModel(astro.Options{TwilightExtensionHours: twilight})
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		daylightCache := cache.NewRedisDaylightCache(client, 0)
		daylight, err = cache.NewCachingDaylightProvider(daylight, daylightCache)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("daylight cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(trail, daylight, 4)

	// Write timeout leaves room for solver requests, which run a full
	// simulation per bisection step.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string, spacingMiles float64) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); err == nil {
		if err := repositories.SeedFromJSON(db, seedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
		return nil
	}

	log.Printf("no seed file at %s, generating synthetic Appalachian profile", seedPath)
	if err := repositories.SeedSamples(db, profile.AppalachianSamples(spacingMiles)); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
