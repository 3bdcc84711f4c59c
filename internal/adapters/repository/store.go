// Package repository holds the immutable in-memory snapshot of the loaded
// play-by-play table and exposes filtered read views over it.
package repository

import (
	"context"

	"github.com/okian/courtside/internal/domain/model"
)

// Store provides read access to the event snapshot. There is no write
// path: a snapshot is built once from loader output and replaced wholesale
// on reload.
type Store interface {
	// Events returns the full table. Callers must not mutate it.
	Events(ctx context.Context) []model.ShotEvent

	// TeamShots returns rows attributed to team, in table order.
	TeamShots(ctx context.Context, team string) []model.ShotEvent

	// PlayerShots returns rows for one shooter within a team's subset.
	PlayerShots(ctx context.Context, team, player string) []model.ShotEvent

	// Teams returns distinct shot_team values, sorted.
	Teams(ctx context.Context) []string

	// Shooters returns distinct shooters on a team's shot subset, sorted.
	Shooters(ctx context.Context, team string) []string

	// Games returns the number of distinct game ids in the snapshot.
	Games(ctx context.Context) int

	// Len returns the number of rows in the snapshot.
	Len(ctx context.Context) int
}
