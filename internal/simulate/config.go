package simulate

// Config holds configuration for a season simulation.
type Config struct {
	Conference   string // Conference whose teams play; empty means all teams
	Games        int    // Number of games to generate
	PlaysPerGame int    // Shot rows per game before non-shot rows
	Seed         int64  // RNG seed; the same seed reproduces the season
	OutputFile   string // CSV destination path
}

// Defaults for season simulation.
const (
	DefaultGames        = 50
	DefaultPlaysPerGame = 120
)
