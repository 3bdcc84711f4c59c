// Package simulate generates synthetic play-by-play seasons in the same
// CSV shape the loader consumes. Useful for local runs and load testing
// without a real dataset.
package simulate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/courtside/internal/domain/conference"
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/pkg/logger"
)

// Shot mix weights, out of 100.
const (
	weightLayup     = 30
	weightMidRange  = 35
	weightThree     = 25
	weightFreeThrow = 10
)

// Make probabilities per shot kind.
const (
	makeLayup     = 0.60
	makeMidRange  = 0.42
	makeThree     = 0.34
	makeFreeThrow = 0.72
)

// timeoutEvery inserts one non-shot row after this many shot rows.
const timeoutEvery = 25

const rosterSize = 8

// Generate produces a deterministic synthetic season for the configured
// conference. The same seed always yields the same rows.
func Generate(ctx context.Context, cfg *Config) ([]model.ShotEvent, error) {
	teams, err := pickTeams(cfg.Conference)
	if err != nil {
		return nil, err
	}

	games := cfg.Games
	if games <= 0 {
		games = DefaultGames
	}
	plays := cfg.PlaysPerGame
	if plays <= 0 {
		plays = DefaultPlaysPerGame
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	logger.Named("simulate").Info(ctx, "generating season",
		logger.Int("games", games),
		logger.Int("teams", len(teams)),
		logger.String("conference", cfg.Conference),
	)

	var events []model.ShotEvent
	for g := 0; g < games; g++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation canceled: %w", err)
		}
		home := teams[rng.Intn(len(teams))]
		away := teams[rng.Intn(len(teams))]
		for away == home {
			away = teams[rng.Intn(len(teams))]
		}
		events = append(events, playGame(rng, home, away, plays)...)
	}
	return events, nil
}

func pickTeams(conf string) ([]string, error) {
	mapping := conference.Default()
	if conf == "" {
		return mapping.AllTeams(), nil
	}
	teams, ok := mapping.Teams(conf)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConference, conf)
	}
	return teams, nil
}

// playGame emits the rows of one game with monotonically increasing
// running scores.
func playGame(rng *rand.Rand, home, away string, plays int) []model.ShotEvent {
	gameID := uuid.New().String()
	homeScore, awayScore := 0, 0

	rows := make([]model.ShotEvent, 0, plays+plays/timeoutEvery)
	for p := 0; p < plays; p++ {
		shotTeam := home
		if rng.Intn(2) == 1 {
			shotTeam = away
		}
		shooter := fmt.Sprintf("%s Player %d", shotTeam, rng.Intn(rosterSize)+1)

		kind := rollKind(rng)
		made := rng.Float64() < kind.makeProb

		e := model.ShotEvent{
			GameID:      gameID,
			Home:        home,
			Away:        away,
			ShotTeam:    shotTeam,
			Shooter:     shooter,
			Outcome:     model.OutcomeMissed,
			ThreePt:     kind.threePt,
			FreeThrow:   kind.freeThrow,
			Description: kind.description,
		}
		if made {
			e.Outcome = model.OutcomeMade
			if shotTeam == home {
				homeScore += kind.points
			} else {
				awayScore += kind.points
			}
		}
		e.HomeScore = model.Float(float64(homeScore))
		e.AwayScore = model.Float(float64(awayScore))
		rows = append(rows, e)

		if (p+1)%timeoutEvery == 0 {
			rows = append(rows, model.ShotEvent{
				GameID:      gameID,
				Home:        home,
				Away:        away,
				HomeScore:   model.Float(float64(homeScore)),
				AwayScore:   model.Float(float64(awayScore)),
				ShotTeam:    shotTeam,
				Description: "Timeout",
			})
		}
	}
	return rows
}

type shotKind struct {
	description string
	points      int
	threePt     bool
	freeThrow   bool
	makeProb    float64
}

func rollKind(rng *rand.Rand) shotKind {
	roll := rng.Intn(100)
	switch {
	case roll < weightLayup:
		return shotKind{description: "Layup", points: 2, makeProb: makeLayup}
	case roll < weightLayup+weightMidRange:
		return shotKind{description: "Jump Shot", points: 2, makeProb: makeMidRange}
	case roll < weightLayup+weightMidRange+weightThree:
		return shotKind{description: "Three Point Jumper", points: 3, threePt: true, makeProb: makeThree}
	default:
		return shotKind{description: "Free Throw 1 of 1", points: 1, freeThrow: true, makeProb: makeFreeThrow}
	}
}
