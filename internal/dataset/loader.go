// Package dataset loads the play-by-play CSV into domain records.
//
// The CSV comes from an export of a pandas dataframe, so parsing is
// deliberately lenient: scores arrive as floats ("80.0"), booleans as
// "True"/"False", and any cell may be empty. A load failure is the
// process's only hard error path; everything downstream assumes a
// well-formed table.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/courtside/internal/domain/model"
)

const defaultTimeout = 60 * time.Second

// Loader fetches and parses play-by-play data from a file path or URL.
type Loader struct {
	client  *http.Client
	timeout time.Duration
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithTimeout bounds a single load, fetch and parse included.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}

// New creates a Loader with default configuration.
func New(opts ...Option) *Loader {
	l := &Loader{
		client:  http.DefaultClient,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the CSV at source, which is treated as a URL when it has an
// http or https scheme and as a local path otherwise.
func (l *Loader) Load(ctx context.Context, source string) ([]model.ShotEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	body, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	events, err := Parse(body)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("%w: unexpected status %s for %s", ErrFetch, resp.Status, source)
		}
		return resp.Body, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return f, nil
}

// columns maps header names to indices; -1 marks an absent column.
type columns struct {
	gameID, home, away           int
	homeScore, awayScore         int
	shotTeam, shooter, outcome   int
	threePt, freeThrow, describe int
}

// Parse reads CSV rows into shot events. The header row drives column
// lookup so column order does not matter. Rows without a game_id are
// dropped; every other field parses leniently with empty meaning absent.
func Parse(r io.Reader) ([]model.ShotEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrParse, err)
	}

	idx := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	cols := columns{
		gameID:    idx("game_id"),
		home:      idx("home"),
		away:      idx("away"),
		homeScore: idx("home_score"),
		awayScore: idx("away_score"),
		shotTeam:  idx("shot_team"),
		shooter:   idx("shooter"),
		outcome:   idx("shot_outcome"),
		threePt:   idx("three_pt"),
		freeThrow: idx("free_throw"),
		describe:  idx("description"),
	}
	if cols.gameID < 0 || cols.home < 0 || cols.away < 0 || cols.shotTeam < 0 {
		return nil, fmt.Errorf("%w: required columns missing (need game_id, home, away, shot_team)", ErrParse)
	}

	var events []model.ShotEvent
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %w", ErrParse, err)
		}

		gameID := cell(rec, cols.gameID)
		if gameID == "" {
			continue
		}

		events = append(events, model.ShotEvent{
			GameID:      gameID,
			Home:        cell(rec, cols.home),
			Away:        cell(rec, cols.away),
			HomeScore:   parseScore(cell(rec, cols.homeScore)),
			AwayScore:   parseScore(cell(rec, cols.awayScore)),
			ShotTeam:    cell(rec, cols.shotTeam),
			Shooter:     cell(rec, cols.shooter),
			Outcome:     model.ParseOutcome(cell(rec, cols.outcome)),
			ThreePt:     parseBool(cell(rec, cols.threePt)),
			FreeThrow:   parseBool(cell(rec, cols.freeThrow)),
			Description: cell(rec, cols.describe),
		})
	}
	return events, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseScore(s string) model.NullFloat {
	if s == "" {
		return model.NullFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.NullFloat{}
	}
	return model.Float(v)
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "t":
		return true
	default:
		return false
	}
}
