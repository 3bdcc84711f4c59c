package stats

import (
	"sort"

	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/types"
)

// Standings builds a conference standings table for the given teams,
// ordered by win percentage descending. Teams that never appear as home or
// away are skipped.
//
// Games played here counts distinct games where the team is listed as home
// or away, not the shot-based count used by Record. The field-goal
// percentage is made over ALL of the team's shot rows, free throws
// included, which intentionally differs from the Splits field-goal subset.
func Standings(events []model.ShotEvent, teams []string) []types.StandingRow {
	finals := finalScores(events)

	rows := make([]types.StandingRow, 0, len(teams))
	for _, team := range teams {
		games := make(map[string]struct{})
		for _, e := range events {
			if e.GameID == "" {
				continue
			}
			if e.Home == team || e.Away == team {
				games[e.GameID] = struct{}{}
			}
		}
		if len(games) == 0 {
			continue
		}

		wins := 0
		for _, f := range finals {
			if !f.complete() {
				continue
			}
			switch {
			case f.home == team && f.homeScore.Float64 > f.awayScore.Float64:
				wins++
			case f.away == team && f.awayScore.Float64 > f.homeScore.Float64:
				wins++
			}
		}

		made, total := 0, 0
		for _, e := range events {
			if e.ShotTeam != team {
				continue
			}
			total++
			if e.Made() {
				made++
			}
		}

		rows = append(rows, types.StandingRow{
			Team:          team,
			WinPercentage: percentage(wins, len(games)),
			FGPercentage:  percentage(made, total),
			Wins:          wins,
			GamesPlayed:   len(games),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WinPercentage > rows[j].WinPercentage
	})
	return rows
}
