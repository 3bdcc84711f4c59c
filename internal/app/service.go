// Package service provides the core analysis service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/courtside/internal/adapters/repository"
	"github.com/okian/courtside/internal/domain/conference"
	"github.com/okian/courtside/internal/domain/shotchart"
	"github.com/okian/courtside/internal/domain/stats"
	"github.com/okian/courtside/internal/domain/types"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
)

// Analysis kinds reported to metrics.
const (
	kindTeamStats   = "team_stats"
	kindPlayerStats = "player_stats"
	kindTopScorers  = "top_scorers"
	kindStandings   = "standings"
	kindCompare     = "compare"
	kindShotChart   = "shot_chart"
	kindBreakdown   = "breakdown"
)

const defaultTopScorersLimit = 5

// ShotChart bundles the labeled shots of one team or player with the
// zone rollup and the overall make rate.
type ShotChart struct {
	Shots   []types.LabeledShot `json:"shots"`
	Zones   []types.ZoneSummary `json:"zones"`
	Summary types.ShotSummary   `json:"summary"`
}

// Service implements the API dependencies for the analytics system.
// All answers are computed on demand from the event snapshot.
type Service struct {
	store           repository.Store
	conferences     *conference.Mapping
	topScorersLimit int
	logger          logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the event snapshot the service reads from.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithConferences sets the conference membership table.
func WithConferences(m *conference.Mapping) Option {
	return func(s *Service) {
		if m != nil {
			s.conferences = m
		}
	}
}

// WithTopScorersLimit sets how many players a top scorers query returns.
func WithTopScorersLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topScorersLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		conferences:     conference.Default(),
		topScorersLimit: defaultTopScorersLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		return nil, ErrNoStore
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s, nil
}

// observe records one analysis request and returns a closer that
// records its duration.
func observe(kind string) func() {
	metrics.RecordAnalysisRequest(kind)
	start := time.Now()
	return func() {
		metrics.RecordAnalysisDuration(kind, float64(time.Since(start).Milliseconds()))
	}
}

// Conferences returns the known conference names, sorted.
func (s *Service) Conferences(_ context.Context) []string {
	return s.conferences.Names()
}

// ConferenceTeams returns the member teams of one conference.
func (s *Service) ConferenceTeams(_ context.Context, conf string) ([]string, error) {
	teams, ok := s.conferences.Teams(conf)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConference, conf)
	}
	return teams, nil
}

// Teams returns every team that appears in the snapshot, sorted.
func (s *Service) Teams(ctx context.Context) []string {
	return s.store.Teams(ctx)
}

// Roster returns the shooters recorded for one team, sorted.
func (s *Service) Roster(ctx context.Context, team string) []string {
	return s.store.Shooters(ctx, team)
}

// TeamStats returns the season line for one team. An unknown team gets
// a zeroed line rather than an error.
func (s *Service) TeamStats(ctx context.Context, team string) types.TeamStats {
	defer observe(kindTeamStats)()
	return stats.TeamStats(s.store.Events(ctx), team)
}

// PlayerStats returns per-player season lines for one team, in the
// order shooters first appear in the table.
func (s *Service) PlayerStats(ctx context.Context, team string) []types.PlayerStats {
	defer observe(kindPlayerStats)()
	return stats.PlayerStats(s.store.Events(ctx), team)
}

// TopScorers returns the team's highest-PPG players, capped at the
// configured limit.
func (s *Service) TopScorers(ctx context.Context, team string) []types.PlayerStats {
	defer observe(kindTopScorers)()
	return stats.TopScorers(s.store.Events(ctx), team, s.topScorersLimit)
}

// Standings computes the conference table ordered by win percentage.
func (s *Service) Standings(ctx context.Context, conf string) ([]types.StandingRow, error) {
	defer observe(kindStandings)()

	teams, err := s.ConferenceTeams(ctx, conf)
	if err != nil {
		return nil, err
	}
	return stats.Standings(s.store.Events(ctx), teams), nil
}

// Compare puts two teams' season lines side by side.
func (s *Service) Compare(ctx context.Context, left, right string) types.Comparison {
	defer observe(kindCompare)()
	return stats.Compare(s.store.Events(ctx), left, right)
}

// TeamShotChart labels and summarizes every shot a team attempted.
func (s *Service) TeamShotChart(ctx context.Context, team string) ShotChart {
	defer observe(kindShotChart)()

	labeled := shotchart.LabelShots(s.store.Events(ctx), team, true)
	return ShotChart{
		Shots:   labeled,
		Zones:   shotchart.ZoneSummaries(labeled),
		Summary: shotchart.Summary(s.store.TeamShots(ctx, team)),
	}
}

// PlayerShotChart labels and summarizes one shooter's attempts.
func (s *Service) PlayerShotChart(ctx context.Context, team, player string) ShotChart {
	defer observe(kindShotChart)()

	events := s.store.PlayerShots(ctx, team, player)
	labeled := shotchart.LabelShots(events, player, false)
	return ShotChart{
		Shots:   labeled,
		Zones:   shotchart.ZoneSummaries(labeled),
		Summary: shotchart.Summary(events),
	}
}

// ShotBreakdown counts a team's shots by scoring type, most common
// first.
func (s *Service) ShotBreakdown(ctx context.Context, team string) []types.BreakdownSlice {
	defer observe(kindBreakdown)()

	shots := s.store.TeamShots(ctx, team)
	return shotchart.Breakdown(shots)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	rows := s.store.Len(ctx)
	games := s.store.Games(ctx)
	teams := s.store.Teams(ctx)

	metrics.UpdateDatasetRows(rows)
	metrics.UpdateDatasetGames(games)

	return map[string]interface{}{
		"rows":            rows,
		"games":           games,
		"teams":           len(teams),
		"conferences":     len(s.conferences.Names()),
		"topScorersLimit": s.topScorersLimit,
	}
}
