package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"visit-route-service/internal/api/dto"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// RouteHandler exposes persistence endpoints for named routes. Saving never
// re-optimizes; the points arrive already ordered and carry the metrics the
// caller computed for them.
type RouteHandler struct {
	Repo ports.RouteRepository
}

// Collection serves POST (save) and GET (list) on /routes.
func (h *RouteHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *RouteHandler) save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveRouteRequest

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

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Points) == 0 {
		writeError(w, r, http.StatusBadRequest, "points must be non-empty")
		return
	}

	points := make([]*domain.Point, 0, len(req.Points))
	for i, p := range req.Points {
		if p.Lat == nil || p.Lon == nil {
			writeError(w, r, http.StatusBadRequest, "points: resolved coordinates required")
			return
		}
		point, err := domain.NewPoint(p.ID, p.Name, p.Address, *p.Lat, *p.Lon, p.Notes, p.DwellSeconds)
		if err != nil {
			log.Printf("save route rejected: point=%d err=%v", i, err)
			writeError(w, r, http.StatusBadRequest, "points: invalid point")
			return
		}
		points = append(points, point)
	}

	route := &domain.SavedRoute{
		Name:                 name,
		Points:               points,
		TotalDistanceMeters:  req.TotalDistanceMeters,
		TotalDurationSeconds: req.TotalDurationSeconds,
	}

	if err := h.Repo.SaveRoute(r.Context(), route); err != nil {
		log.Printf("save route failed: name=%q err=%v", name, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, savedRouteResponse(route))
}

func (h *RouteHandler) list(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.SavedRouteResponse, 0, len(routes)),
	}
	for _, route := range routes {
		res.Routes = append(res.Routes, savedRouteResponse(route))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Delete serves DELETE /routes/{id}.
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/routes/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusBadRequest, "route id is required")
		return
	}

	if err := h.Repo.DeleteRoute(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrRouteNotFound) {
			writeError(w, r, http.StatusNotFound, "route not found")
			return
		}
		log.Printf("delete route failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func savedRouteResponse(route *domain.SavedRoute) dto.SavedRouteResponse {
	stops := make([]dto.StopResponse, 0, len(route.Points))
	for _, p := range route.Points {
		stops = append(stops, dto.StopResponse{
			ID:           p.ID,
			Name:         p.Name,
			Address:      p.Address,
			Notes:        p.Notes,
			Lat:          p.Coord.Lat,
			Lon:          p.Coord.Lon,
			DwellSeconds: p.DwellSeconds,
		})
	}

	return dto.SavedRouteResponse{
		ID:                   route.ID,
		Name:                 route.Name,
		Stops:                stops,
		TotalDistanceMeters:  route.TotalDistanceMeters,
		TotalDurationSeconds: route.TotalDurationSeconds,
		Bounds: dto.BoundsResponse{
			MinLat: route.Bounds.MinLat,
			MinLon: route.Bounds.MinLon,
			MaxLat: route.Bounds.MaxLat,
			MaxLon: route.Bounds.MaxLon,
		},
		CreatedAt: route.CreatedAt,
	}
}
