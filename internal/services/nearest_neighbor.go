package services

import "visit-route-service/internal/domain"

// ConstructTour builds an initial visiting order using a greedy
// nearest-neighbor heuristic over great-circle distance.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global optimization; ImproveTour refines the result. The
// design prioritizes determinism and simplicity over optimality.
func ConstructTour(start domain.Coordinates, points []*domain.Point) domain.Tour {
	if len(points) == 0 {
		return domain.Tour{}
	}

	unvisited := make([]*domain.Point, len(points))
	copy(unvisited, points)

	tour := make(domain.Tour, 0, len(points))
	current := start

	for len(unvisited) > 0 {
		bestIdx := 0
		bestDist := domain.Haversine(current, unvisited[0].Coord)

		// Strict < keeps the earliest input point on ties, which makes the
		// ordering reproducible.
		for i := 1; i < len(unvisited); i++ {
			if d := domain.Haversine(current, unvisited[i].Coord); d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		next := unvisited[bestIdx]
		tour = append(tour, next)
		current = next.Coord
		unvisited = append(unvisited[:bestIdx], unvisited[bestIdx+1:]...)
	}

	return tour
}
