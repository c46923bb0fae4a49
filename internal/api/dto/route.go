package dto

import "time"

// SaveRouteRequest persists an already-optimized route under a name. Points
// must carry resolved coordinates; there is no implicit re-optimization on
// save.
type SaveRouteRequest struct {
	Name                 string         `json:"name"`
	Points               []PointRequest `json:"points"`
	TotalDistanceMeters  int            `json:"total_distance_meters"`
	TotalDurationSeconds int            `json:"total_duration_seconds"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

type SavedRouteResponse struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Stops                []StopResponse `json:"stops"`
	TotalDistanceMeters  int            `json:"total_distance_meters"`
	TotalDurationSeconds int            `json:"total_duration_seconds"`
	Bounds               BoundsResponse `json:"bounds"`
	CreatedAt            time.Time      `json:"created_at"`
}

type ListRoutesResponse struct {
	Routes []SavedRouteResponse `json:"routes"`
}
