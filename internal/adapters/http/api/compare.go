// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/courtside/internal/domain/types"
)

// CompareDependencies defines the interface for head-to-head queries.
type CompareDependencies interface {
	Compare(ctx context.Context, left, right string) types.Comparison
}

// CompareHandler handles head-to-head comparison requests.
type CompareHandler struct {
	deps CompareDependencies
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// HandleCompare handles GET /api/v1/compare?team1=X&team2=Y requests.
func (h *CompareHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"

	q := r.URL.Query()
	left, right := q.Get("team1"), q.Get("team2")
	if left == "" || right == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Compare(r.Context(), left, right))
}
