package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/platform/metrics"
	"visit-route-service/internal/platform/obs"
	"visit-route-service/internal/ports"
)

type inflightCall struct {
	cancel context.CancelFunc
}

// Optimizer runs the full sequencing pipeline: nearest-neighbor
// construction, 2-opt improvement, then real-world detail calculation.
//
// The heuristics themselves are pure functions; the only state the Optimizer
// retains is an in-flight registry used to supersede concurrent requests. A
// new request for the same key cancels the one still running, so a stale
// result can never be published after a fresher request has begun.
type Optimizer struct {
	Provider    ports.LegProvider
	DefaultMode ports.TravelMode
	MaxPasses   int

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

func NewOptimizer(provider ports.LegProvider, defaultMode ports.TravelMode) *Optimizer {
	return &Optimizer{
		Provider:    provider,
		DefaultMode: defaultMode,
		inflight:    make(map[string]*inflightCall),
	}
}

// Optimize computes a low-cost visiting order over the given points and
// resolves its travel metrics. key identifies the logical selection being
// optimized; concurrent calls with the same key supersede each other. An
// empty mode falls back to the configured default.
func (o *Optimizer) Optimize(
	ctx context.Context,
	key string,
	start domain.Coordinates,
	points []*domain.Point,
	mode ports.TravelMode,
) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "optimizer.Optimize")(&err)

	began := time.Now()
	defer func() {
		metrics.OptimizeDuration.Observe(time.Since(began).Seconds())
	}()

	if mode == "" {
		mode = o.DefaultMode
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	call := &inflightCall{cancel: cancel}

	o.mu.Lock()
	if prev, ok := o.inflight[key]; ok {
		prev.cancel()
	}
	o.inflight[key] = call
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		// A superseding call may have replaced the slot already.
		if o.inflight[key] == call {
			delete(o.inflight, key)
		}
		o.mu.Unlock()
	}()

	tour := ConstructTour(start, points)
	tour = ImproveTour(start, tour, o.MaxPasses)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := CalculateRouteDetails(ctx, start, tour, o.Provider, mode)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	return result, nil
}
