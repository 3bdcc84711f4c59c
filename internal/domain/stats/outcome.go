// Package stats derives team and player statistics from play-by-play rows.
// Every function is a pure fold over an immutable event slice; results are
// recomputed on each call and never cached.
package stats

import "github.com/okian/courtside/internal/domain/model"

// finalScore is the resolved end state of one game: the first recorded
// home/away names and the last valid running scores, in row order.
type finalScore struct {
	home      string
	away      string
	homeScore model.NullFloat
	awayScore model.NullFloat
}

// complete reports whether the game has everything needed to decide a
// winner. Games missing a team name or a final score are dropped from
// outcome resolution.
func (f finalScore) complete() bool {
	return f.home != "" && f.away != "" && f.homeScore.Valid && f.awayScore.Valid
}

// finalScores folds the event table into one resolved row per game_id.
// Rows are per-event with repeated running totals, so the last valid
// home/away score in row order is the final score.
func finalScores(events []model.ShotEvent) map[string]finalScore {
	finals := make(map[string]finalScore)
	for _, e := range events {
		if e.GameID == "" {
			continue
		}
		f := finals[e.GameID]
		if f.home == "" {
			f.home = e.Home
		}
		if f.away == "" {
			f.away = e.Away
		}
		if e.HomeScore.Valid {
			f.homeScore = e.HomeScore
		}
		if e.AwayScore.Valid {
			f.awayScore = e.AwayScore
		}
		finals[e.GameID] = f
	}
	return finals
}

// Record returns a team's (wins, losses, gamesPlayed).
//
// Wins are counted from final scores of games where the team appears as
// home or away. GamesPlayed deliberately uses a different definition: the
// number of distinct games in which the team took at least one shot.
// Losses = gamesPlayed - wins, which can disagree with the win count (or
// even go negative) when a team has shot rows in games it is not listed
// in; downstream consumers rely on exactly these numbers.
func Record(events []model.ShotEvent, team string) (wins, losses, gamesPlayed int) {
	for _, f := range finalScores(events) {
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

	seen := make(map[string]struct{})
	for _, e := range events {
		if e.ShotTeam == team && e.GameID != "" {
			seen[e.GameID] = struct{}{}
		}
	}
	gamesPlayed = len(seen)

	return wins, gamesPlayed - wins, gamesPlayed
}
