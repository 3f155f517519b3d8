// Package config loads the settings a caller maps onto generation and
// search options: grid size, seed, strategy, pacing delay, heatmap overlay
// and logging.
//
// Sources, later ones winning:
//
//  1. Default()
//  2. an optional HCL file with optional `maze`, `search` and `log` blocks
//  3. optional dotenv files (read, never exported into the process)
//  4. MAZEWALK_* process environment variables
//
// The algorithms never read configuration directly.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solve"
	"github.com/katalvlaran/mazewalk/traverse"
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Rows int   // requested grid rows (rounded up to odd by maze.New)
	Cols int   // requested grid columns
	Seed int64 // generation seed; 0 keeps the clock-seeded default

	Strategy    string        // bfs, dfs, greedy or bug2
	Delay       time.Duration // pause per paced notification
	ShowHeatmap bool          // sink-only overlay flag

	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Rows:        41,
		Cols:        41,
		Seed:        0,
		Strategy:    solve.BFS.String(),
		Delay:       12 * time.Millisecond,
		ShowHeatmap: false,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Validate reports the first unusable setting wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Rows < maze.MinDimension || c.Cols < maze.MinDimension:
		return fmt.Errorf("%w: grid %dx%d is below %dx%d", ErrInvalid, c.Rows, c.Cols, maze.MinDimension, maze.MinDimension)
	case c.Delay < 0:
		return fmt.Errorf("%w: negative delay %s", ErrInvalid, c.Delay)
	}
	if _, err := solve.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	return nil
}

// StrategyValue returns the configured strategy.
func (c Config) StrategyValue() (solve.Strategy, error) {
	return solve.ParseStrategy(c.Strategy)
}

// SearchOptions maps the pacing settings onto search options.
func (c Config) SearchOptions() []traverse.Option {
	return []traverse.Option{traverse.WithDelay(c.Delay)}
}

// CarveOptions maps the pacing and seed settings onto generation options.
func (c Config) CarveOptions() []carve.Option {
	opts := []carve.Option{carve.WithDelay(c.Delay)}
	if c.Seed != 0 {
		opts = append(opts, carve.WithSeed(uint64(c.Seed)))
	}
	return opts
}

// Logger builds a slog.Logger writing to w with the configured level and format.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
}
