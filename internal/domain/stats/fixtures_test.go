package stats_test

import "github.com/okian/courtside/internal/domain/model"

// row builds a shot event with valid running scores, the common case in
// these tests.
func row(gameID, home, away string, homeScore, awayScore float64, shotTeam, shooter string, outcome model.Outcome, threePt, freeThrow bool, desc string) model.ShotEvent {
	return model.ShotEvent{
		GameID:      gameID,
		Home:        home,
		Away:        away,
		HomeScore:   model.Float(homeScore),
		AwayScore:   model.Float(awayScore),
		ShotTeam:    shotTeam,
		Shooter:     shooter,
		Outcome:     outcome,
		ThreePt:     threePt,
		FreeThrow:   freeThrow,
		Description: desc,
	}
}

// sampleSeason mirrors a two-game slice of play-by-play data: Kentucky
// beats Duke at home, then Duke beats Tennessee at home. Each team's shots
// are all made.
func sampleSeason() []model.ShotEvent {
	return []model.ShotEvent{
		row("g1", "Kentucky", "Duke", 78, 75, "Kentucky", "Player1", model.OutcomeMade, true, false, "Three Point Shot"),
		row("g1", "Kentucky", "Duke", 80, 75, "Kentucky", "Player2", model.OutcomeMade, false, false, "Jump Shot"),
		row("g2", "Duke", "Tennessee", 72, 70, "Duke", "Player3", model.OutcomeMade, true, false, "Three Point Shot"),
		row("g2", "Duke", "Tennessee", 75, 70, "Duke", "Player4", model.OutcomeMade, false, false, "Jump Shot"),
	}
}
