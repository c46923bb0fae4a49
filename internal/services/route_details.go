package services

import (
	"context"
	"fmt"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// CalculateRouteDetails resolves every leg of a finalized tour through the
// routing provider and aggregates real-world metrics.
//
// Legs are resolved sequentially and in order: the first failing leg aborts
// the whole calculation before any later external call is spent, and no
// partial result is ever returned. Cancellation is checked between legs.
// An empty tour yields a zero-valued result, not an error. Total duration is
// the sum of leg durations plus the dwell time of every visited point.
func CalculateRouteDetails(
	ctx context.Context,
	start domain.Coordinates,
	tour domain.Tour,
	provider ports.LegProvider,
	mode ports.TravelMode,
) (*domain.RouteResult, error) {
	if len(tour) == 0 {
		return &domain.RouteResult{Tour: domain.Tour{}, Legs: []domain.Leg{}}, nil
	}

	legs := make([]domain.Leg, 0, len(tour))
	totalMeters := 0
	totalSeconds := 0

	origin := start
	for i, p := range tour {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r, err := provider.GetLeg(ctx, origin, p.Coord, mode)
		if err != nil {
			return nil, fmt.Errorf("calculate route details: leg %d: %w", i, err)
		}

		legs = append(legs, domain.Leg{
			From:            origin,
			To:              p.Coord,
			DistanceMeters:  r.DistanceMeters,
			DurationSeconds: r.DurationSeconds,
		})
		totalMeters += r.DistanceMeters
		totalSeconds += r.DurationSeconds
		origin = p.Coord
	}

	for _, p := range tour {
		totalSeconds += p.DwellSeconds
	}

	return &domain.RouteResult{
		Tour:                 tour.Clone(),
		Legs:                 legs,
		TotalDistanceMeters:  totalMeters,
		TotalDurationSeconds: totalSeconds,
	}, nil
}
