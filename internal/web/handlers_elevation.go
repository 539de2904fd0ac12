package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/paulmach/orb"
)

// maxElevationPoints bounds one elevation request.
const maxElevationPoints = 10000

var errElevationDisabled = errors.New("elevation service not configured")

// ElevationRequest lists points as [longitude, latitude] pairs.
type ElevationRequest struct {
	Points [][2]float64 `json:"points"`
}

// ElevationResponse holds one elevation per requested point, in order.
// Points the service could not resolve are null.
type ElevationResponse struct {
	Elevations []*float64 `json:"elevations"`
}

// handleElevation looks up the elevation of a list of points.
func (s *Server) handleElevation(w http.ResponseWriter, r *http.Request) {
	if s.elevation == nil {
		s.respondError(w, r, errElevationDisabled)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Validation.MaxBodySize)
	var req ElevationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, fmt.Errorf("%w: invalid JSON: %v", errBadRequest, err))
		return
	}
	if len(req.Points) == 0 {
		writeJSON(w, http.StatusOK, ElevationResponse{Elevations: []*float64{}})
		return
	}
	if len(req.Points) > maxElevationPoints {
		s.respondError(w, r, fmt.Errorf("%w: at most %d points per request", errBadRequest, maxElevationPoints))
		return
	}

	points := make([]orb.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = orb.Point{p[0], p[1]}
	}

	elevations, err := s.elevation.Lookup(r.Context(), points)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ElevationResponse{Elevations: elevations})
}
