package stats

import (
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/types"
)

// TeamShots returns the subset of rows attributed to team, preserving
// order. The returned slice is freshly allocated.
func TeamShots(events []model.ShotEvent, team string) []model.ShotEvent {
	var shots []model.ShotEvent
	for _, e := range events {
		if e.ShotTeam == team {
			shots = append(shots, e)
		}
	}
	return shots
}

// TeamStats combines the win/loss record with shooting splits over the
// team's shot subset. Pure composition of Record and Splits.
func TeamStats(events []model.ShotEvent, team string) types.TeamStats {
	wins, losses, gamesPlayed := Record(events, team)
	fg, three := Splits(TeamShots(events, team))
	return types.TeamStats{
		GamesPlayed:     gamesPlayed,
		Wins:            wins,
		Losses:          losses,
		FGPercentage:    fg,
		ThreePercentage: three,
	}
}
