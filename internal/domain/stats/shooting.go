package stats

import (
	"strings"

	"github.com/okian/courtside/internal/domain/model"
)

// freeThrowMarker is matched case-sensitively against row descriptions.
const freeThrowMarker = "Free Throw"

const percentScale = 100

// isFieldGoal reports whether a row counts as a field-goal attempt: any
// shot whose description does not mention a free throw. Rows with an empty
// description count as attempts.
func isFieldGoal(e model.ShotEvent) bool {
	return !strings.Contains(e.Description, freeThrowMarker)
}

// Splits returns (fgPercentage, threePercentage) over the given shot rows,
// each in [0,100], or 0 when the corresponding subset is empty.
//
// The two subsets overlap: a three-point attempt is also a field-goal
// attempt. Free throws are excluded from the field-goal split only.
func Splits(shots []model.ShotEvent) (fgPercentage, threePercentage float64) {
	var fgMade, fgTotal, threeMade, threeTotal int
	for _, e := range shots {
		if isFieldGoal(e) {
			fgTotal++
			if e.Made() {
				fgMade++
			}
		}
		if e.ThreePt {
			threeTotal++
			if e.Made() {
				threeMade++
			}
		}
	}
	return percentage(fgMade, fgTotal), percentage(threeMade, threeTotal)
}

// percentage returns 100*made/total, or 0 when total is zero. The zero is
// a deliberate "no data" sentinel rather than an error.
func percentage(made, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(made) / float64(total) * percentScale
}
