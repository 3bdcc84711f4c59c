package stats

import (
	"sort"

	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/types"
)

// PlayerStats returns one record per distinct shooter in the team's shot
// subset, in first-appearance order. Rows without a shooter are excluded
// entirely rather than grouped under an unknown player.
func PlayerStats(events []model.ShotEvent, team string) []types.PlayerStats {
	shots := TeamShots(events, team)

	byPlayer := make(map[string][]model.ShotEvent)
	var order []string
	for _, e := range shots {
		if !e.HasShooter() {
			continue
		}
		if _, ok := byPlayer[e.Shooter]; !ok {
			order = append(order, e.Shooter)
		}
		byPlayer[e.Shooter] = append(byPlayer[e.Shooter], e)
	}

	out := make([]types.PlayerStats, 0, len(order))
	for _, player := range order {
		out = append(out, playerLine(player, byPlayer[player]))
	}
	return out
}

// playerLine folds one shooter's rows into a stat line. Games played
// counts distinct games over all the shooter's rows, made or missed.
func playerLine(player string, rows []model.ShotEvent) types.PlayerStats {
	games := make(map[string]struct{})
	totalPoints := 0
	for _, e := range rows {
		if e.GameID != "" {
			games[e.GameID] = struct{}{}
		}
		totalPoints += e.Points()
	}

	ppg := 0.0
	if len(games) > 0 {
		ppg = float64(totalPoints) / float64(len(games))
	}

	fg, three := Splits(rows)
	return types.PlayerStats{
		Player:          player,
		TotalPoints:     totalPoints,
		PPG:             ppg,
		GamesPlayed:     len(games),
		FGPercentage:    fg,
		ThreePercentage: three,
	}
}

// TopScorers returns the team's player stats ordered by points per game,
// capped at n. Ties keep first-appearance order.
func TopScorers(events []model.ShotEvent, team string, n int) []types.PlayerStats {
	players := PlayerStats(events, team)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].PPG > players[j].PPG
	})
	if n > 0 && len(players) > n {
		players = players[:n]
	}
	return players
}
