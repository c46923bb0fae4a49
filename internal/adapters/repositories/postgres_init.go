package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the postgres schema for saved routes and the persistent caches.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSavedRoutesQuery := `
	CREATE TABLE IF NOT EXISTS saved_routes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		total_distance_meters INTEGER NOT NULL,
		total_duration_seconds INTEGER NOT NULL,
		min_lat DOUBLE PRECISION NOT NULL,
		min_lon DOUBLE PRECISION NOT NULL,
		max_lat DOUBLE PRECISION NOT NULL,
		max_lon DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createSavedRoutePointsQuery := `
	CREATE TABLE IF NOT EXISTS saved_route_points (
		route_id TEXT NOT NULL REFERENCES saved_routes(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		point_id TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		dwell_seconds INTEGER NOT NULL,
		PRIMARY KEY (route_id, position)
	);
	`

	createLegCacheQuery := `
	CREATE TABLE IF NOT EXISTS leg_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		PRIMARY KEY (origin, destination, mode)
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_saved_routes_created_at
	ON saved_routes(created_at DESC);
	`

	statements := []string{
		createSavedRoutesQuery,
		createSavedRoutePointsQuery,
		createLegCacheQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
