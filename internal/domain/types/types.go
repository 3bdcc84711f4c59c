// Package types contains derived records shared between the aggregation
// layer and the HTTP API. All values are recomputed per request; nothing
// here is persisted.
package types

// TeamStats summarizes a team's season.
//
// GamesPlayed counts distinct games in which the team took at least one
// shot, while Wins comes from final scores of games where the team is
// listed as home or away. The two definitions can disagree, so Losses
// (GamesPlayed - Wins) may be inconsistent for teams with partial data.
type TeamStats struct {
	GamesPlayed     int     `json:"games_played"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	FGPercentage    float64 `json:"fg_percentage"`
	ThreePercentage float64 `json:"three_percentage"`
}

// PlayerStats summarizes one shooter within a team's shot subset.
type PlayerStats struct {
	Player          string  `json:"player"`
	TotalPoints     int     `json:"total_points"`
	PPG             float64 `json:"ppg"`
	GamesPlayed     int     `json:"games_played"`
	FGPercentage    float64 `json:"fg_percentage"`
	ThreePercentage float64 `json:"three_percentage"`
}

// StandingRow is one team's line in a conference standings table, ordered
// by win percentage. FGPercentage here is made over all shot rows including
// free throws.
type StandingRow struct {
	Team          string  `json:"team"`
	WinPercentage float64 `json:"win_percentage"`
	FGPercentage  float64 `json:"fg_percentage"`
	Wins          int     `json:"wins"`
	GamesPlayed   int     `json:"games_played"`
}

// ComparisonSide holds the chart values for one team in a head-to-head
// comparison.
type ComparisonSide struct {
	Team            string  `json:"team"`
	WinPercentage   float64 `json:"win_percentage"`
	FGPercentage    float64 `json:"fg_percentage"`
	ThreePercentage float64 `json:"three_percentage"`
}

// Comparison pairs two teams for the comparison chart.
type Comparison struct {
	Left  ComparisonSide `json:"left"`
	Right ComparisonSide `json:"right"`
}

// LabeledShot is a shot row with its court zone attached for chart use.
type LabeledShot struct {
	GameID      string `json:"game_id"`
	ShotTeam    string `json:"shot_team"`
	Shooter     string `json:"shooter,omitempty"`
	Outcome     string `json:"shot_outcome,omitempty"`
	ThreePt     bool   `json:"three_pt"`
	FreeThrow   bool   `json:"free_throw"`
	Description string `json:"description,omitempty"`
	ShotType    string `json:"shot_type"`
}

// ZoneSummary holds per-zone shooting numbers for the court chart.
type ZoneSummary struct {
	Zone       string  `json:"zone"`
	Made       int     `json:"made"`
	Attempts   int     `json:"attempts"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// BreakdownSlice is one slice of the shot-type distribution pie.
type BreakdownSlice struct {
	ShotType string `json:"shot_type"`
	Count    int    `json:"count"`
}

// ShotSummary holds headline numbers for a shot chart.
type ShotSummary struct {
	TotalShots int     `json:"total_shots"`
	MadeShots  int     `json:"made_shots"`
	Percentage float64 `json:"percentage"`
}
