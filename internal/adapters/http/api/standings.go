// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/types"
)

// StandingsDependencies defines the interface for standings queries.
type StandingsDependencies interface {
	Standings(ctx context.Context, conf string) ([]types.StandingRow, error)
}

// StandingsHandler handles conference standings requests.
type StandingsHandler struct {
	deps StandingsDependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// HandleStandings handles GET /api/v1/conferences/{conference}/standings requests.
func (h *StandingsHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.standings"

	conf := mux.Vars(r)["conference"]
	rows, err := h.deps.Standings(r.Context(), conf)
	if err != nil {
		if errors.Is(err, service.ErrUnknownConference) {
			writeError(w, http.StatusNotFound, "unknown_conference", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
