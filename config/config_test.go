package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solve"
	"github.com/katalvlaran/mazewalk/traverse"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 41, cfg.Rows)
	assert.Equal(t, 41, cfg.Cols)
	assert.Equal(t, "bfs", cfg.Strategy)
	assert.Equal(t, 12*time.Millisecond, cfg.Delay)
	assert.False(t, cfg.ShowHeatmap)
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_HCLFile checks that only attributes present in the file override
// the defaults.
func TestLoad_HCLFile(t *testing.T) {
	path := writeFile(t, "mazewalk.hcl", `
maze {
  rows = 21
  seed = 99
}

search {
  strategy     = "greedy"
  show_heatmap = true
}

log {
  format = "json"
}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Rows = 21
	want.Seed = 99
	want.Strategy = "greedy"
	want.ShowHeatmap = true
	want.LogFormat = "json"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_HCLErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "bad.hcl", "maze {\n rows = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	_, err = config.Load(writeFile(t, "unknown.hcl", "maze {\n depth = 3\n}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")

	_, err = config.Load(writeFile(t, "small.hcl", "maze {\n rows = 1\n}\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

// TestLoad_Precedence checks file < dotenv < process environment.
func TestLoad_Precedence(t *testing.T) {
	hcl := writeFile(t, "mazewalk.hcl", `
maze {
  rows = 21
  cols = 21
}
search {
  strategy = "dfs"
  delay_ms = 5
}
`)
	env := writeFile(t, "test.env", "MAZEWALK_ROWS=31\nMAZEWALK_STRATEGY=bug2\nMAZEWALK_LOG_LEVEL=debug\n")
	t.Setenv(config.EnvStrategy, "greedy")
	t.Setenv(config.EnvShowHeatmap, "true")
	t.Setenv(config.EnvDelayMS, "0")

	cfg, err := config.Load(hcl, env)
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.Rows, "dotenv over file")
	assert.Equal(t, 21, cfg.Cols, "file over default")
	assert.Equal(t, "greedy", cfg.Strategy, "process env over dotenv")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.Delay)
	assert.True(t, cfg.ShowHeatmap)

	_, ok := os.LookupEnv(config.EnvLogLevel)
	assert.False(t, ok, "dotenv values are not exported")
}

func TestLoad_EnvErrors(t *testing.T) {
	cases := map[string]string{
		config.EnvRows:        "many",
		config.EnvSeed:        "0x",
		config.EnvDelayMS:     "fast",
		config.EnvShowHeatmap: "sometimes",
		config.EnvLogFormat:   "yaml",
		config.EnvStrategy:    "astar",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load("")
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingDotenv(t *testing.T) {
	_, err := config.Load("", filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read dotenv")
}

func TestValidate(t *testing.T) {
	mutate := map[string]func(*config.Config){
		"rows":     func(c *config.Config) { c.Rows = maze.MinDimension - 1 },
		"cols":     func(c *config.Config) { c.Cols = 0 },
		"delay":    func(c *config.Config) { c.Delay = -time.Second },
		"strategy": func(c *config.Config) { c.Strategy = "random" },
		"level":    func(c *config.Config) { c.LogLevel = "trace" },
		"format":   func(c *config.Config) { c.LogFormat = "xml" },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			fn(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Delay = 3 * time.Millisecond

	o, err := traverse.Build(cfg.SearchOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Millisecond, o.Delay)

	s, err := cfg.StrategyValue()
	require.NoError(t, err)
	assert.Equal(t, solve.BFS, s)

	// a fixed seed makes CarveOptions reproducible
	cfg.Delay = 0
	cfg.Seed = 8
	a, _ := maze.New(15, 15)
	b, _ := maze.New(15, 15)
	require.NoError(t, carve.Generate(a, cfg.CarveOptions()...))
	require.NoError(t, carve.Generate(b, cfg.CarveOptions()...))
	assert.Equal(t, a.String(), b.String())
	assert.Len(t, config.Default().CarveOptions(), 1, "no seed option when unseeded")
}

func TestLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	log, err := cfg.Logger(&buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	cfg.LogLevel = "loud"
	_, err = cfg.Logger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
