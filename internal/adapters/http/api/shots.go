// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/types"
)

// ShotsDependencies defines the interface for shot chart queries.
type ShotsDependencies interface {
	TeamShotChart(ctx context.Context, team string) service.ShotChart
	PlayerShotChart(ctx context.Context, team, player string) service.ShotChart
	ShotBreakdown(ctx context.Context, team string) []types.BreakdownSlice
}

// ShotsHandler handles shot chart and breakdown requests.
type ShotsHandler struct {
	deps ShotsDependencies
}

// NewShotsHandler creates a new shots handler.
func NewShotsHandler(deps ShotsDependencies) *ShotsHandler {
	return &ShotsHandler{deps: deps}
}

// HandleTeamShots handles GET /api/v1/teams/{team}/shots requests.
func (h *ShotsHandler) HandleTeamShots(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	writeJSON(w, http.StatusOK, h.deps.TeamShotChart(r.Context(), team))
}

// HandlePlayerShots handles GET /api/v1/teams/{team}/players/{player}/shots requests.
func (h *ShotsHandler) HandlePlayerShots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	writeJSON(w, http.StatusOK, h.deps.PlayerShotChart(r.Context(), vars["team"], vars["player"]))
}

// HandleBreakdown handles GET /api/v1/teams/{team}/shots/breakdown requests.
func (h *ShotsHandler) HandleBreakdown(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	writeJSON(w, http.StatusOK, h.deps.ShotBreakdown(r.Context(), team))
}
