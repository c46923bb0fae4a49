package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/platform/metrics"
	"visit-route-service/internal/platform/obs"
	"visit-route-service/internal/ports"
)

// ORSLegProvider implements LegProvider using the OpenRouteService
// directions endpoint.
//
// It coordinates:
//   - Travel-mode to routing-profile mapping
//   - Persistent leg caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSLegProvider struct {
	orsClient
	legCache ports.LegCache
}

func NewORSLegProvider(apiKey string, legCache ports.LegCache) (*ORSLegProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSLegProvider{
		orsClient: orsClient{
			session: &http.Client{Timeout: 10 * time.Second},
			apiKey:  apiKey,
			baseURL: "https://api.openrouteservice.org",
		},
		legCache: legCache,
	}, nil
}

func profileFor(mode ports.TravelMode) (string, error) {
	switch mode {
	case ports.ModeWalking:
		return "foot-walking", nil
	case ports.ModeDriving:
		return "driving-car", nil
	default:
		return "", fmt.Errorf("unknown travel mode %q", mode)
	}
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// GetLeg resolves one leg, consulting the persistent cache before issuing an
// external call. A routability failure maps to ErrNoRouteFound.
func (o *ORSLegProvider) GetLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode ports.TravelMode,
) (_ ports.LegResult, err error) {
	defer obs.Time(ctx, "ors.GetLeg")(&err)

	profile, err := profileFor(mode)
	if err != nil {
		return ports.LegResult{}, fmt.Errorf("get ORS leg: %w", err)
	}

	if o.legCache != nil {
		cached, ok, cerr := o.legCache.GetLeg(ctx, origin, destination, mode)
		if cerr != nil {
			return ports.LegResult{}, fmt.Errorf("get ORS leg: cache read: %w", cerr)
		}
		if ok {
			metrics.LegCacheRequests.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.LegCacheRequests.WithLabelValues("miss").Inc()
	}

	result, err := o.fetchLeg(ctx, profile, origin, destination)
	if err != nil {
		if errors.Is(err, ports.ErrNoRouteFound) {
			metrics.LegLookups.WithLabelValues("no_route").Inc()
		} else {
			metrics.LegLookups.WithLabelValues("error").Inc()
		}
		return ports.LegResult{}, err
	}
	metrics.LegLookups.WithLabelValues("ok").Inc()

	if o.legCache != nil {
		if cerr := o.legCache.PutLeg(ctx, origin, destination, mode, result); cerr != nil {
			log.Printf("leg cache write failed: %v", cerr)
		}
	}

	return result, nil
}

func (o *ORSLegProvider) fetchLeg(
	ctx context.Context,
	profile string,
	origin, destination domain.Coordinates,
) (ports.LegResult, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
	})
	if err != nil {
		return ports.LegResult{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		// ORS reports unroutable pairs with a 404 error body rather than an
		// empty result set.
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return ports.LegResult{}, fmt.Errorf("leg %s -> %s: %w", coordKey(origin), coordKey(destination), ports.ErrNoRouteFound)
		}
		return ports.LegResult{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.LegResult{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return ports.LegResult{}, fmt.Errorf("leg %s -> %s: %w", coordKey(origin), coordKey(destination), ports.ErrNoRouteFound)
	}

	summary := dr.Routes[0].Summary

	// ORS returns float metrics; round to nearest integer for domain consistency.
	return ports.LegResult{
		DistanceMeters:  int(math.Round(summary.Distance)),
		DurationSeconds: int(math.Round(summary.Duration)),
	}, nil
}
