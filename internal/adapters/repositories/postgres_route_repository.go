package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// Postgres-backed implementation of the RouteRepository port.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

// SaveRoute persists the route header and its ordered point list in one
// transaction. A missing ID, bounding box, or creation time is filled in
// here so callers only have to supply the computed route.
func (s *PostgresRouteRepository) SaveRoute(ctx context.Context, route *domain.SavedRoute) error {
	if s.DB == nil {
		return errors.New("route repository: DB is nil")
	}
	if route == nil {
		return errors.New("save route: route must be non-nil")
	}
	if len(route.Points) == 0 {
		return errors.New("save route: route must contain at least one point")
	}

	if route.ID == "" {
		route.ID = uuid.NewString()
	}
	if route.CreatedAt.IsZero() {
		route.CreatedAt = time.Now().UTC()
	}
	if route.Bounds == (domain.Bounds{}) {
		route.Bounds = routeBounds(route.Points)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRoute := `
	INSERT INTO saved_routes (
		id, name, total_distance_meters, total_duration_seconds,
		min_lat, min_lon, max_lat, max_lon, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	if _, err := tx.ExecContext(ctx, insertRoute,
		route.ID, route.Name, route.TotalDistanceMeters, route.TotalDurationSeconds,
		route.Bounds.MinLat, route.Bounds.MinLon, route.Bounds.MaxLat, route.Bounds.MaxLon,
		route.CreatedAt,
	); err != nil {
		return fmt.Errorf("save route: insert route %q: %w", route.Name, err)
	}

	insertPoint := `
	INSERT INTO saved_route_points (
		route_id, position, point_id, name, address, notes, lat, lon, dwell_seconds
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	stmt, err := tx.PrepareContext(ctx, insertPoint)
	if err != nil {
		return fmt.Errorf("save route: prepare point insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range route.Points {
		if _, err := stmt.ExecContext(ctx,
			route.ID, i, p.ID, p.Name, p.Address, p.Notes,
			p.Coord.Lat, p.Coord.Lon, p.DwellSeconds,
		); err != nil {
			return fmt.Errorf("save route: insert point %q at position %d: %w", p.ID, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save route: commit tx: %w", err)
	}

	return nil
}

// ListRoutes returns all saved routes with their ordered points, most recent
// first.
func (s *PostgresRouteRepository) ListRoutes(ctx context.Context) ([]*domain.SavedRoute, error) {
	if s.DB == nil {
		return nil, errors.New("route repository: DB is nil")
	}

	routesQuery := `
	SELECT id, name, total_distance_meters, total_duration_seconds,
		min_lat, min_lon, max_lat, max_lon, created_at
	FROM saved_routes
	ORDER BY created_at DESC;
	`

	rows, err := s.DB.QueryContext(ctx, routesQuery)
	if err != nil {
		return nil, fmt.Errorf("list routes: query saved_routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.SavedRoute, 0, 16)
	byID := make(map[string]*domain.SavedRoute)
	for rows.Next() {
		r := &domain.SavedRoute{}
		if err := rows.Scan(
			&r.ID, &r.Name, &r.TotalDistanceMeters, &r.TotalDurationSeconds,
			&r.Bounds.MinLat, &r.Bounds.MinLon, &r.Bounds.MaxLat, &r.Bounds.MaxLon,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list routes: scan route row: %w", err)
		}
		routes = append(routes, r)
		byID[r.ID] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: route row iteration: %w", err)
	}

	if len(routes) == 0 {
		return routes, nil
	}

	pointsQuery := `
	SELECT route_id, point_id, name, address, notes, lat, lon, dwell_seconds
	FROM saved_route_points
	ORDER BY route_id, position;
	`

	pointRows, err := s.DB.QueryContext(ctx, pointsQuery)
	if err != nil {
		return nil, fmt.Errorf("list routes: query saved_route_points table: %w", err)
	}
	defer pointRows.Close()

	for pointRows.Next() {
		var routeID string
		p := &domain.Point{}
		if err := pointRows.Scan(
			&routeID, &p.ID, &p.Name, &p.Address, &p.Notes,
			&p.Coord.Lat, &p.Coord.Lon, &p.DwellSeconds,
		); err != nil {
			return nil, fmt.Errorf("list routes: scan point row: %w", err)
		}
		if r, ok := byID[routeID]; ok {
			r.Points = append(r.Points, p)
		}
	}
	if err := pointRows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: point row iteration: %w", err)
	}

	return routes, nil
}

// DeleteRoute removes a saved route and its points (cascade).
func (s *PostgresRouteRepository) DeleteRoute(ctx context.Context, id string) error {
	if s.DB == nil {
		return errors.New("route repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM saved_routes WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete route %q: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete route %q: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete route %q: %w", id, ports.ErrRouteNotFound)
	}

	return nil
}
