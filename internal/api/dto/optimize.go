package dto

type CoordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PointRequest describes one candidate stop. Either a coordinate pair or a
// non-empty address must be supplied; address-only points are geocoded
// before optimization.
type PointRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	Notes        string   `json:"notes"`
	DwellSeconds int      `json:"dwell_seconds"`
}

type OptimizeRequest struct {
	// Key identifies the logical selection; a new request with the same key
	// supersedes one still in flight. Derived from point ids when omitted.
	Key    string             `json:"key"`
	Start  CoordinatesRequest `json:"start"`
	Mode   string             `json:"mode"`
	Points []PointRequest     `json:"points"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type StopResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name,omitempty"`
	Address      string  `json:"address,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	DwellSeconds int     `json:"dwell_seconds"`
}

type LegResponse struct {
	From            CoordinatesResponse `json:"from"`
	To              CoordinatesResponse `json:"to"`
	DistanceMeters  int                 `json:"distance_meters"`
	DurationSeconds int                 `json:"duration_seconds"`
}

type OptimizeResponse struct {
	Stops                []StopResponse `json:"stops"`
	Legs                 []LegResponse  `json:"legs"`
	TotalDistanceMeters  int            `json:"total_distance_meters"`
	TotalDurationSeconds int            `json:"total_duration_seconds"`
}
