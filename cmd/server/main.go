package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"visit-route-service/internal/adapters/cache"
	"visit-route-service/internal/adapters/repositories"
	"visit-route-service/internal/adapters/routing"
	"visit-route-service/internal/api"
	"visit-route-service/internal/config"
	"visit-route-service/internal/platform/db"
	"visit-route-service/internal/platform/metrics"
	"visit-route-service/internal/ports"
	"visit-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	defaultMode := ports.TravelMode(config.Get("DEFAULT_TRAVEL_MODE", string(ports.ModeWalking)))
	if defaultMode != ports.ModeWalking && defaultMode != ports.ModeDriving {
		log.Fatalf("DEFAULT_TRAVEL_MODE must be walking or driving, got %q", defaultMode)
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := repositories.InitSchema(pool); err != nil {
		log.Fatal(err)
	}

	legCache, err := buildLegCache(pool)
	if err != nil {
		log.Fatal(err)
	}

	provider, geocoder, err := buildRouting(pool, legCache)
	if err != nil {
		log.Fatal(err)
	}

	optimizer := services.NewOptimizer(provider, defaultMode)
	repo := repositories.NewPostgresRouteRepository(pool)

	metrics.RegisterDefault()
	router := api.NewRouter(optimizer, geocoder, repo)

	// Timeouts are tuned for cold-cache optimization (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildLegCache selects the leg cache backend from LEG_CACHE: redis, postgres
// (default), or none.
func buildLegCache(pool *sql.DB) (ports.LegCache, error) {
	switch backend := config.Get("LEG_CACHE", "postgres"); backend {
	case "redis":
		redisURL := config.Get("REDIS_URL", "redis://localhost:6379/0")
		return cache.NewRedisLegCache(redisURL, 0)
	case "postgres":
		return cache.NewPostgresLegCache(pool), nil
	case "none":
		return nil, nil
	default:
		log.Fatalf("LEG_CACHE must be redis, postgres, or none, got %q", backend)
		return nil, nil
	}
}

// buildRouting wires the ORS-backed provider and geocoder when an API key is
// configured, and falls back to the offline great-circle estimator otherwise.
func buildRouting(pool *sql.DB, legCache ports.LegCache) (ports.LegProvider, ports.Geocoder, error) {
	orsKey := strings.TrimSpace(os.Getenv("ORS_API_KEY"))
	if orsKey == "" {
		log.Println("ORS_API_KEY not set; using offline great-circle estimates, geocoding disabled")
		return routing.HaversineLegProvider{}, nil, nil
	}

	provider, err := routing.NewORSLegProvider(orsKey, legCache)
	if err != nil {
		return nil, nil, err
	}

	geocoder, err := routing.NewORSGeocoder(orsKey, cache.NewSQLGeocodeCache(pool))
	if err != nil {
		return nil, nil, err
	}

	return provider, geocoder, nil
}
