package shotchart

// Zone shading colors keyed to shooting percentage bands.
const (
	colorNeutral   = "lightgray"
	colorCold      = "#ff4747"
	colorCool      = "#f7f36d"
	colorWarm      = "#bff783"
	colorHot       = "#76f562"
	colorScorching = "#05fa05"

	coldUpperBound = 42
	coolUpperBound = 50
	warmUpperBound = 60
	hotUpperBound  = 80
)

// ZoneColor maps a shooting percentage to its shading color. Exactly zero
// is the neutral no-data shade; each band includes its upper bound.
func ZoneColor(percentage float64) string {
	switch {
	case percentage == 0:
		return colorNeutral
	case percentage <= coldUpperBound:
		return colorCold
	case percentage <= coolUpperBound:
		return colorCool
	case percentage <= warmUpperBound:
		return colorWarm
	case percentage <= hotUpperBound:
		return colorHot
	default:
		return colorScorching
	}
}
