package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// PostgresLegCache is a SQL-backed persistent cache for resolved leg
// metrics, keyed by rounded endpoint coordinates and travel mode.
type PostgresLegCache struct {
	DB *sql.DB
}

func NewPostgresLegCache(db *sql.DB) *PostgresLegCache {
	return &PostgresLegCache{DB: db}
}

func (s *PostgresLegCache) GetLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode ports.TravelMode,
) (ports.LegResult, bool, error) {
	if s.DB == nil {
		return ports.LegResult{}, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds
	FROM leg_cache
	WHERE origin = $1
		AND destination = $2
		AND mode = $3;
	`

	var meters, seconds int
	err := s.DB.QueryRowContext(ctx, q, coordKey(origin), coordKey(destination), string(mode)).
		Scan(&meters, &seconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.LegResult{}, false, nil
	}
	if err != nil {
		return ports.LegResult{}, false, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}

	return ports.LegResult{DistanceMeters: meters, DurationSeconds: seconds}, true, nil
}

func (s *PostgresLegCache) PutLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode ports.TravelMode,
	result ports.LegResult,
) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	q := `
	INSERT INTO leg_cache (origin, destination, mode, distance_meters, duration_seconds)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (origin, destination, mode) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		coordKey(origin), coordKey(destination), string(mode),
		result.DistanceMeters, result.DurationSeconds,
	); err != nil {
		return fmt.Errorf("insert leg cache: %w", err)
	}

	return nil
}
