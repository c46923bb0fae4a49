package domain

import "time"

// Leg is one directed edge between two consecutive stops (including the
// implicit start to first-stop edge), carrying real-world metrics resolved
// by a routing provider. Legs are derived data: they are recomputed on each
// detail calculation and never stored inside a Tour.
type Leg struct {
	From            Coordinates
	To              Coordinates
	DistanceMeters  int
	DurationSeconds int
}

// RouteResult is the output bundle of a completed route computation: the
// ordered tour plus aggregate real-world metrics. Total duration includes
// the dwell time of every visited point. A RouteResult is either complete or
// absent; partial results are never published.
type RouteResult struct {
	Tour                 Tour
	Legs                 []Leg
	TotalDistanceMeters  int
	TotalDurationSeconds int
}

// Bounds is an axis-aligned bounding box around a saved route, in degrees.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// SavedRoute is a named route persisted by the host application: the ordered
// point list plus the aggregate metrics that were computed for it. The
// sequencing engine neither reads nor writes saved routes.
type SavedRoute struct {
	ID                   string
	Name                 string
	Points               []*Point
	TotalDistanceMeters  int
	TotalDurationSeconds int
	Bounds               Bounds
	CreatedAt            time.Time
}
