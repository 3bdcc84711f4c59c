package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/courtside/internal/simulate"
	"github.com/okian/courtside/pkg/logger"
)

const generateTimeout = 2 * time.Minute

func main() {
	var (
		out        = flag.String("out", "ncaa_pbp.csv", "Output CSV path")
		games      = flag.Int("games", simulate.DefaultGames, "Number of games to generate")
		plays      = flag.Int("plays", simulate.DefaultPlaysPerGame, "Shot rows per game")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "RNG seed; fix it for reproducible output")
		conference = flag.String("conference", "", "Restrict matchups to one conference (default: all teams)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	cfg := &simulate.Config{
		Conference:   *conference,
		Games:        *games,
		PlaysPerGame: *plays,
		Seed:         *seed,
		OutputFile:   *out,
	}

	events, err := simulate.Generate(ctx, cfg)
	if err != nil {
		logger.Get().Error(ctx, "generation failed", logger.Error(err))
		os.Exit(1)
	}

	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		logger.Get().Error(ctx, "creating output file failed", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	if err := simulate.WriteCSV(f, events); err != nil {
		logger.Get().Error(ctx, "writing output failed", logger.Error(err))
		os.Exit(1)
	}

	logger.Get().Info(ctx, "season written",
		logger.String("path", cfg.OutputFile),
		logger.Int("rows", len(events)),
		logger.Int("games", *games),
	)
}
