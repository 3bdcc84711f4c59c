// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/okian/courtside/internal/app"
)

// ConferencesDependencies defines the interface for conference lookups.
type ConferencesDependencies interface {
	Conferences(ctx context.Context) []string
	ConferenceTeams(ctx context.Context, conf string) ([]string, error)
}

// ConferencesHandler handles conference listing requests.
type ConferencesHandler struct {
	deps ConferencesDependencies
}

// NewConferencesHandler creates a new conferences handler.
func NewConferencesHandler(deps ConferencesDependencies) *ConferencesHandler {
	return &ConferencesHandler{deps: deps}
}

// HandleList handles GET /api/v1/conferences requests.
func (h *ConferencesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Conferences(r.Context()))
}

// HandleTeams handles GET /api/v1/conferences/{conference}/teams requests.
func (h *ConferencesHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.conference_teams"

	conf := mux.Vars(r)["conference"]
	teams, err := h.deps.ConferenceTeams(r.Context(), conf)
	if err != nil {
		if errors.Is(err, service.ErrUnknownConference) {
			writeError(w, http.StatusNotFound, "unknown_conference", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, teams)
}
