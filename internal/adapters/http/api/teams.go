// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okian/courtside/internal/domain/types"
)

// TeamsDependencies defines the interface for team queries.
type TeamsDependencies interface {
	Teams(ctx context.Context) []string
	TeamStats(ctx context.Context, team string) types.TeamStats
}

// TeamsHandler handles team listing and season-line requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleList handles GET /api/v1/teams requests.
func (h *TeamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Teams(r.Context()))
}

// HandleStats handles GET /api/v1/teams/{team}/stats requests.
// A team absent from the dataset gets a zeroed line, matching the
// aggregation semantics rather than erroring.
func (h *TeamsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	writeJSON(w, http.StatusOK, h.deps.TeamStats(r.Context(), team))
}
