package simulate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/courtside/internal/domain/model"
)

// csvHeader matches the column set the loader expects.
var csvHeader = []string{
	"game_id", "home", "away", "home_score", "away_score",
	"shot_team", "shooter", "shot_outcome", "three_pt", "free_throw", "description",
}

// WriteCSV renders events in the pandas export shape the loader parses:
// float scores, True/False booleans, empty cells for absent values.
func WriteCSV(w io.Writer, events []model.ShotEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: header: %w", ErrWrite, err)
	}
	for _, e := range events {
		rec := []string{
			e.GameID,
			e.Home,
			e.Away,
			formatScore(e.HomeScore),
			formatScore(e.AwayScore),
			e.ShotTeam,
			e.Shooter,
			string(e.Outcome),
			formatBool(e.ThreePt),
			formatBool(e.FreeThrow),
			e.Description,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%w: row: %w", ErrWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrWrite, err)
	}
	return nil
}

func formatScore(v model.NullFloat) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', 1, 64)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
