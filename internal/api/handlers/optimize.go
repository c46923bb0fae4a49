package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"visit-route-service/internal/api/dto"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
	"visit-route-service/internal/services"
)

type OptimizeHandler struct {
	Optimizer *services.Optimizer
	Geocoder  ports.Geocoder
}

// Optimize sequences the submitted points from the given start and resolves
// the resulting route's travel metrics. Address-only points are geocoded
// first; a request with the same key as one still in flight supersedes it.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start, err := domain.NewCoordinates(req.Start.Lat, req.Start.Lon)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start: invalid coordinate")
		return
	}

	mode, ok := parseMode(req.Mode)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "mode must be walking or driving")
		return
	}

	points := make([]*domain.Point, 0, len(req.Points))
	for i, p := range req.Points {
		point, status, msg := h.resolvePoint(r.Context(), i, p)
		if point == nil {
			writeError(w, r, status, msg)
			return
		}
		points = append(points, point)
	}

	key := strings.TrimSpace(req.Key)
	if key == "" {
		key = selectionKey(points)
	}

	result, err := h.Optimizer.Optimize(r.Context(), key, start, points, mode)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrNoRouteFound):
			writeError(w, r, http.StatusUnprocessableEntity, "no route found between stops")
		case errors.Is(err, context.Canceled):
			writeError(w, r, http.StatusConflict, "request superseded")
		default:
			log.Printf("optimize failed: key=%s err=%v", key, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, optimizeResponse(result))
}

// resolvePoint turns one request point into a domain point, geocoding when
// only an address was given. A nil point means the request must be rejected
// with the returned status and message.
func (h *OptimizeHandler) resolvePoint(ctx context.Context, i int, p dto.PointRequest) (*domain.Point, int, string) {
	if p.Lat != nil && p.Lon != nil {
		point, err := domain.NewPoint(p.ID, p.Name, p.Address, *p.Lat, *p.Lon, p.Notes, p.DwellSeconds)
		if err != nil {
			return nil, http.StatusBadRequest, "points: invalid point at index " + strconv.Itoa(i)
		}
		return point, 0, ""
	}

	addr := strings.TrimSpace(p.Address)
	if addr == "" {
		return nil, http.StatusBadRequest, "points: coordinates or address required at index " + strconv.Itoa(i)
	}
	if h.Geocoder == nil {
		return nil, http.StatusBadRequest, "points: geocoding not configured"
	}

	coord, err := h.Geocoder.Geocode(ctx, addr)
	if err != nil {
		log.Printf("geocode failed: address=%q err=%v", addr, err)
		return nil, http.StatusUnprocessableEntity, "points: could not geocode address at index " + strconv.Itoa(i)
	}

	point, err := domain.NewPoint(p.ID, p.Name, p.Address, coord.Lat, coord.Lon, p.Notes, p.DwellSeconds)
	if err != nil {
		return nil, http.StatusBadRequest, "points: invalid point at index " + strconv.Itoa(i)
	}
	return point, 0, ""
}

func parseMode(s string) (ports.TravelMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", true
	case string(ports.ModeWalking):
		return ports.ModeWalking, true
	case string(ports.ModeDriving):
		return ports.ModeDriving, true
	default:
		return "", false
	}
}

// selectionKey derives a stable supersede key from the point ids, so two
// requests over the same selection collide regardless of input order.
func selectionKey(points []*domain.Point) string {
	ids := make([]string, 0, len(points))
	for _, p := range points {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func optimizeResponse(result *domain.RouteResult) dto.OptimizeResponse {
	res := dto.OptimizeResponse{
		Stops:                make([]dto.StopResponse, 0, len(result.Tour)),
		Legs:                 make([]dto.LegResponse, 0, len(result.Legs)),
		TotalDistanceMeters:  result.TotalDistanceMeters,
		TotalDurationSeconds: result.TotalDurationSeconds,
	}

	for _, p := range result.Tour {
		res.Stops = append(res.Stops, dto.StopResponse{
			ID:           p.ID,
			Name:         p.Name,
			Address:      p.Address,
			Notes:        p.Notes,
			Lat:          p.Coord.Lat,
			Lon:          p.Coord.Lon,
			DwellSeconds: p.DwellSeconds,
		})
	}

	for _, l := range result.Legs {
		res.Legs = append(res.Legs, dto.LegResponse{
			From:            dto.CoordinatesResponse{Lat: l.From.Lat, Lon: l.From.Lon},
			To:              dto.CoordinatesResponse{Lat: l.To.Lat, Lon: l.To.Lon},
			DistanceMeters:  l.DistanceMeters,
			DurationSeconds: l.DurationSeconds,
		})
	}

	return res
}
