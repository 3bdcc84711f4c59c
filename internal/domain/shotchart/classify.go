// Package shotchart labels shot events for court and distribution charts.
//
// Two classifiers live here and they are not interchangeable: the court
// zone classifier (Layup / Mid-Range / Three Point) feeds the shot chart,
// while the distribution classifier (Free Throw / 3-Point / 2-Point) feeds
// the pie breakdown. They use different label sets and different
// precedence rules.
package shotchart

import (
	"strings"

	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/types"
)

// Court zone labels.
const (
	ZoneLayup      = "Layup"
	ZoneMidRange   = "Mid-Range"
	ZoneThreePoint = "Three Point"
)

// Distribution labels for the pie breakdown.
const (
	TypeFreeThrow = "Free Throw"
	TypeThree     = "3-Point"
	TypeTwo       = "2-Point"
)

// Substring markers, matched case-sensitively.
const (
	layupMarker     = "Layup"
	freeThrowMarker = "Free Throw"
)

// ZoneFor labels a shot by court zone. Mid-Range is the default, the
// three-point flag promotes to Three Point, and a layup description wins
// over both because it is applied last.
func ZoneFor(e model.ShotEvent) string {
	zone := ZoneMidRange
	if e.ThreePt {
		zone = ZoneThreePoint
	}
	if strings.Contains(e.Description, layupMarker) {
		zone = ZoneLayup
	}
	return zone
}

// TypeFor labels a shot for the distribution pie. Free-throw descriptions
// take precedence over the three-point flag here, the reverse of the
// scoring rule.
func TypeFor(e model.ShotEvent) string {
	switch {
	case strings.Contains(e.Description, freeThrowMarker):
		return TypeFreeThrow
	case e.ThreePt:
		return TypeThree
	default:
		return TypeTwo
	}
}

// LabelShots filters the table down to one team's shots (or one shooter's
// when isTeam is false), attaching the court zone to each row. Row count
// and order are preserved for the selected subset.
func LabelShots(events []model.ShotEvent, name string, isTeam bool) []types.LabeledShot {
	var out []types.LabeledShot
	for _, e := range events {
		if isTeam {
			if e.ShotTeam != name {
				continue
			}
		} else if e.Shooter != name {
			continue
		}
		out = append(out, types.LabeledShot{
			GameID:      e.GameID,
			ShotTeam:    e.ShotTeam,
			Shooter:     e.Shooter,
			Outcome:     string(e.Outcome),
			ThreePt:     e.ThreePt,
			FreeThrow:   e.FreeThrow,
			Description: e.Description,
			ShotType:    ZoneFor(e),
		})
	}
	return out
}
