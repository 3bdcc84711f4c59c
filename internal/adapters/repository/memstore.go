package repository

import (
	"context"
	"sort"

	"github.com/okian/courtside/internal/domain/model"
)

// MemStore is an immutable snapshot Store. Index maps are built once in
// the constructor; afterwards every method is a read, so concurrent use
// needs no locking.
type MemStore struct {
	events []model.ShotEvent
	byTeam map[string][]int // team -> row indices in table order
	games  int
}

// NewMemStore builds a snapshot from loader output. The slice is copied
// so later mutation by the caller cannot reach the snapshot.
func NewMemStore(ctx context.Context, events []model.ShotEvent) *MemStore {
	snapshot := append([]model.ShotEvent(nil), events...)

	byTeam := make(map[string][]int)
	games := make(map[string]struct{})
	for i, e := range snapshot {
		if e.ShotTeam != "" {
			byTeam[e.ShotTeam] = append(byTeam[e.ShotTeam], i)
		}
		if e.GameID != "" {
			games[e.GameID] = struct{}{}
		}
	}

	return &MemStore{
		events: snapshot,
		byTeam: byTeam,
		games:  len(games),
	}
}

// Events returns the full table. The backing array is shared; callers
// treat it as read-only.
func (s *MemStore) Events(_ context.Context) []model.ShotEvent {
	return s.events
}

// TeamShots returns a fresh slice of the team's rows in table order.
func (s *MemStore) TeamShots(_ context.Context, team string) []model.ShotEvent {
	idx := s.byTeam[team]
	out := make([]model.ShotEvent, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.events[i])
	}
	return out
}

// PlayerShots returns one shooter's rows within the team's subset.
func (s *MemStore) PlayerShots(ctx context.Context, team, player string) []model.ShotEvent {
	var out []model.ShotEvent
	for _, e := range s.TeamShots(ctx, team) {
		if e.Shooter == player {
			out = append(out, e)
		}
	}
	return out
}

// Teams returns distinct shot_team values, sorted.
func (s *MemStore) Teams(_ context.Context) []string {
	teams := make([]string, 0, len(s.byTeam))
	for team := range s.byTeam {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// Shooters returns distinct shooters on the team's subset, sorted.
func (s *MemStore) Shooters(ctx context.Context, team string) []string {
	seen := make(map[string]struct{})
	for _, e := range s.TeamShots(ctx, team) {
		if e.HasShooter() {
			seen[e.Shooter] = struct{}{}
		}
	}
	shooters := make([]string, 0, len(seen))
	for name := range seen {
		shooters = append(shooters, name)
	}
	sort.Strings(shooters)
	return shooters
}

// Games returns the number of distinct game ids.
func (s *MemStore) Games(_ context.Context) int {
	return s.games
}

// Len returns the number of rows in the snapshot.
func (s *MemStore) Len(_ context.Context) int {
	return len(s.events)
}
