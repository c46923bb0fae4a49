package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"visit-route-service/internal/adapters/cache"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/platform/obs"
	"visit-route-service/internal/ports"
)

// ORSGeocoder implements Geocoder using the OpenRouteService geocode search
// endpoint, fronted by a persistent address cache.
type ORSGeocoder struct {
	orsClient
	geocodeCache *cache.SQLGeocodeCache
}

func NewORSGeocoder(apiKey string, geocodeCache *cache.SQLGeocodeCache) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		orsClient: orsClient{
			session: &http.Client{Timeout: 10 * time.Second},
			apiKey:  apiKey,
			baseURL: "https://api.openrouteservice.org",
		},
		geocodeCache: geocodeCache,
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves one address to a coordinate; no results maps to
// ErrGeocodingFailed. Addresses are normalized so cache keys stay consistent.
func (g *ORSGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := strings.Join(strings.Fields(address), " ")
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	if g.geocodeCache != nil {
		coord, ok, cerr := g.geocodeCache.Get(ctx, norm)
		if cerr != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode: cache read: %w", cerr)
		}
		if ok {
			return coord, nil
		}
	}

	endpoint := g.baseURL + "/geocode/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, ports.ErrGeocodingFailed)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: invalid coordinate format", norm)
	}

	coord, err := domain.NewCoordinates(coords[1], coords[0])
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if g.geocodeCache != nil {
		if cerr := g.geocodeCache.Put(ctx, norm, coord); cerr != nil {
			log.Printf("geocode cache write failed: %v", cerr)
		}
	}

	return coord, nil
}
