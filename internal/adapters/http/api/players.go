// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okian/courtside/internal/domain/types"
)

// PlayersDependencies defines the interface for player queries.
type PlayersDependencies interface {
	PlayerStats(ctx context.Context, team string) []types.PlayerStats
	TopScorers(ctx context.Context, team string) []types.PlayerStats
}

// PlayersHandler handles per-player season-line requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandlePlayers handles GET /api/v1/teams/{team}/players requests.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	writeJSON(w, http.StatusOK, h.deps.PlayerStats(r.Context(), team))
}

// HandleTopScorers handles GET /api/v1/teams/{team}/players/top requests.
func (h *PlayersHandler) HandleTopScorers(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	writeJSON(w, http.StatusOK, h.deps.TopScorers(r.Context(), team))
}
