// Package model contains domain records passed between layers.
package model

import "strings"

// Outcome is the recorded result of a shot event.
type Outcome string

// Outcome values. OutcomeNone marks rows that are not shots by a tracked
// player (timeouts, rebounds, administrative rows).
const (
	OutcomeMade   Outcome = "made"
	OutcomeMissed Outcome = "missed"
	OutcomeNone   Outcome = ""
)

// ParseOutcome maps a raw cell value to an Outcome. Unknown values are
// treated as absent rather than rejected.
func ParseOutcome(s string) Outcome {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "made":
		return OutcomeMade
	case "missed":
		return OutcomeMissed
	default:
		return OutcomeNone
	}
}

// NullFloat is a float64 that may be absent, mirroring empty CSV cells.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a valid NullFloat holding v.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// ShotEvent is one play-by-play row. A row describes either a shot attempt
// or a related game event; the running scores are cumulative at event time.
type ShotEvent struct {
	GameID      string
	Home        string
	Away        string
	HomeScore   NullFloat // running home score, absent on malformed rows
	AwayScore   NullFloat // running away score, absent on malformed rows
	ShotTeam    string    // team attributed to this event
	Shooter     string    // empty when the row has no tracked shooter
	Outcome     Outcome
	ThreePt     bool
	FreeThrow   bool
	Description string // free text, substring matches are case-sensitive
}

// HasShooter reports whether the row is attributed to a player.
func (e ShotEvent) HasShooter() bool {
	return e.Shooter != ""
}

// Made reports whether the row is a made shot.
func (e ShotEvent) Made() bool {
	return e.Outcome == OutcomeMade
}

// Points returns the point value of the row when made: three-pointers score
// 3 regardless of the free-throw flag, free throws 1, everything else 2.
// Missed and non-shot rows score 0.
func (e ShotEvent) Points() int {
	if !e.Made() {
		return 0
	}
	switch {
	case e.ThreePt:
		return 3
	case e.FreeThrow:
		return 1
	default:
		return 2
	}
}
