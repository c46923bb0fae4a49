package domain

import (
	"fmt"
	"strings"
)

// DefaultDwellSeconds is the assumed time spent at a point once arrived,
// added to route duration independently of travel time.
const DefaultDwellSeconds = 900

// Represents a single geographic point to visit.
// Identity is the caller-supplied ID; display metadata is optional. Points
// are immutable once constructed and are referenced, never copied, by tours.
type Point struct {
	ID           string
	Name         string
	Address      string
	Notes        string
	Coord        Coordinates
	DwellSeconds int
}

// NewPoint validates the coordinate up front and applies the default dwell
// time when none is given.
func NewPoint(id, name, address string, lat, lon float64, notes string, dwellSeconds int) (*Point, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("new point: id must be non-empty")
	}

	coord, err := NewCoordinates(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("new point %q: %w", id, err)
	}

	if dwellSeconds <= 0 {
		dwellSeconds = DefaultDwellSeconds
	}

	return &Point{
		ID:           id,
		Name:         name,
		Address:      address,
		Notes:        notes,
		Coord:        coord,
		DwellSeconds: dwellSeconds,
	}, nil
}
