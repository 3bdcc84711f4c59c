package stats

import (
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/types"
)

// Compare produces the head-to-head chart values for two teams. The win
// percentage divides wins by the shot-based games-played count from
// Record, yielding 0 for teams with no shot data.
func Compare(events []model.ShotEvent, left, right string) types.Comparison {
	return types.Comparison{
		Left:  comparisonSide(events, left),
		Right: comparisonSide(events, right),
	}
}

func comparisonSide(events []model.ShotEvent, team string) types.ComparisonSide {
	ts := TeamStats(events, team)
	return types.ComparisonSide{
		Team:            team,
		WinPercentage:   percentage(ts.Wins, ts.GamesPlayed),
		FGPercentage:    ts.FGPercentage,
		ThreePercentage: ts.ThreePercentage,
	}
}
