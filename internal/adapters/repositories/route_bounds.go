package repositories

import (
	"github.com/paulmach/orb"

	"visit-route-service/internal/domain"
)

// boundsPadding widens the stored box by roughly 100m so map viewports fitted
// to it do not clip edge markers.
const boundsPadding = 0.001

// routeBounds computes a padded axis-aligned bounding box around the route's
// points, used by map clients to frame a saved route.
func routeBounds(points []*domain.Point) domain.Bounds {
	if len(points) == 0 {
		return domain.Bounds{}
	}

	first := orb.Point{points[0].Coord.Lon, points[0].Coord.Lat}
	bound := orb.Bound{Min: first, Max: first}
	for _, p := range points[1:] {
		bound = bound.Extend(orb.Point{p.Coord.Lon, p.Coord.Lat})
	}
	bound = bound.Pad(boundsPadding)

	return domain.Bounds{
		MinLat: bound.Min.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLon: bound.Max.Lon(),
	}
}
