package shotchart

import (
	"sort"

	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/types"
)

const percentScale = 100

// ZoneSummaries folds labeled shots into per-zone made/attempt counts with
// chart shading, always emitting the three zones in court order.
func ZoneSummaries(shots []types.LabeledShot) []types.ZoneSummary {
	zones := []string{ZoneLayup, ZoneMidRange, ZoneThreePoint}

	out := make([]types.ZoneSummary, 0, len(zones))
	for _, zone := range zones {
		made, attempts := 0, 0
		for _, s := range shots {
			if s.ShotType != zone {
				continue
			}
			attempts++
			if s.Outcome == string(model.OutcomeMade) {
				made++
			}
		}
		pct := 0.0
		if attempts > 0 {
			pct = float64(made) / float64(attempts) * percentScale
		}
		out = append(out, types.ZoneSummary{
			Zone:       zone,
			Made:       made,
			Attempts:   attempts,
			Percentage: pct,
			Color:      ZoneColor(pct),
		})
	}
	return out
}

// Breakdown counts shots per distribution label, ordered by count
// descending with ties broken by label for determinism.
func Breakdown(events []model.ShotEvent) []types.BreakdownSlice {
	counts := make(map[string]int)
	for _, e := range events {
		counts[TypeFor(e)]++
	}

	out := make([]types.BreakdownSlice, 0, len(counts))
	for label, count := range counts {
		out = append(out, types.BreakdownSlice{ShotType: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ShotType < out[j].ShotType
	})
	return out
}

// Summary returns headline totals for a shot subset.
func Summary(events []model.ShotEvent) types.ShotSummary {
	total, made := 0, 0
	for _, e := range events {
		total++
		if e.Made() {
			made++
		}
	}
	pct := 0.0
	if total > 0 {
		pct = float64(made) / float64(total) * percentScale
	}
	return types.ShotSummary{TotalShots: total, MadeShots: made, Percentage: pct}
}
