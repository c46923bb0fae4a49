package domain

import (
	"errors"
	"fmt"
	"math"
)

// Mean Earth radius for the spherical great-circle approximation.
const earthRadiusMeters = 6371000.0

// ErrInvalidCoordinate reports a latitude or longitude outside the valid
// degree ranges. Malformed coordinates are rejected at construction time so
// the routing algorithms never have to handle them.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Immutable geographic coordinates (latitude, longitude in degrees).
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates validates degree ranges (-90..90 latitude, -180..180
// longitude) and rejects NaN values.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v out of range [-90, 90]: %w", lat, ErrInvalidCoordinate)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v out of range [-180, 180]: %w", lon, ErrInvalidCoordinate)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Haversine returns the great-circle distance between two coordinates in
// meters over a spherical Earth. The result is symmetric, non-negative, and
// finite for any pair of valid coordinates, including identical and
// antipodal points.
func Haversine(a, b Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// Rounding can push h a hair past 1 for near-antipodal pairs, which
	// would make Sqrt(1-h) NaN.
	if h > 1 {
		h = 1
	}

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
