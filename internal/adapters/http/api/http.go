// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Conferences(ctx context.Context) []string
	ConferenceTeams(ctx context.Context, conf string) ([]string, error)
	Teams(ctx context.Context) []string

	TeamStats(ctx context.Context, team string) types.TeamStats
	PlayerStats(ctx context.Context, team string) []types.PlayerStats
	TopScorers(ctx context.Context, team string) []types.PlayerStats
	Standings(ctx context.Context, conf string) ([]types.StandingRow, error)
	Compare(ctx context.Context, left, right string) types.Comparison

	TeamShotChart(ctx context.Context, team string) service.ShotChart
	PlayerShotChart(ctx context.Context, team, player string) service.ShotChart
	ShotBreakdown(ctx context.Context, team string) []types.BreakdownSlice
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	conferencesHandler *ConferencesHandler
	teamsHandler       *TeamsHandler
	playersHandler     *PlayersHandler
	shotsHandler       *ShotsHandler
	standingsHandler   *StandingsHandler
	compareHandler     *CompareHandler
	dashboardHandler   *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		conferencesHandler: NewConferencesHandler(deps),
		teamsHandler:       NewTeamsHandler(deps),
		playersHandler:     NewPlayersHandler(deps),
		shotsHandler:       NewShotsHandler(deps),
		standingsHandler:   NewStandingsHandler(deps),
		compareHandler:     NewCompareHandler(deps),
		dashboardHandler:   newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(ctx context.Context, r *mux.Router) {
	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	r.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/conferences",
		MetricsMiddleware(s.conferencesHandler.HandleList, "conferences")).Methods(http.MethodGet)
	v1.HandleFunc("/conferences/{conference}/teams",
		MetricsMiddleware(s.conferencesHandler.HandleTeams, "conference_teams")).Methods(http.MethodGet)
	v1.HandleFunc("/conferences/{conference}/standings",
		MetricsMiddleware(s.standingsHandler.HandleStandings, "standings")).Methods(http.MethodGet)
	v1.HandleFunc("/teams",
		MetricsMiddleware(s.teamsHandler.HandleList, "teams")).Methods(http.MethodGet)
	v1.HandleFunc("/teams/{team}/stats",
		MetricsMiddleware(s.teamsHandler.HandleStats, "team_stats")).Methods(http.MethodGet)
	v1.HandleFunc("/teams/{team}/players",
		MetricsMiddleware(s.playersHandler.HandlePlayers, "players")).Methods(http.MethodGet)
	v1.HandleFunc("/teams/{team}/players/top",
		MetricsMiddleware(s.playersHandler.HandleTopScorers, "top_scorers")).Methods(http.MethodGet)
	v1.HandleFunc("/teams/{team}/shots",
		MetricsMiddleware(s.shotsHandler.HandleTeamShots, "team_shots")).Methods(http.MethodGet)
	v1.HandleFunc("/teams/{team}/shots/breakdown",
		MetricsMiddleware(s.shotsHandler.HandleBreakdown, "shot_breakdown")).Methods(http.MethodGet)
	v1.HandleFunc("/teams/{team}/players/{player}/shots",
		MetricsMiddleware(s.shotsHandler.HandlePlayerShots, "player_shots")).Methods(http.MethodGet)
	v1.HandleFunc("/compare",
		MetricsMiddleware(s.compareHandler.HandleCompare, "compare")).Methods(http.MethodGet)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
