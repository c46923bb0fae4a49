package cache

import (
	"fmt"

	"visit-route-service/internal/domain"
)

// coordKey rounds coordinates to ~0.1m so floating-point noise cannot split
// cache entries for the same physical location.
func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
