package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable names read by Load.
const (
	EnvRows        = "MAZEWALK_ROWS"
	EnvCols        = "MAZEWALK_COLS"
	EnvSeed        = "MAZEWALK_SEED"
	EnvStrategy    = "MAZEWALK_STRATEGY"
	EnvDelayMS     = "MAZEWALK_DELAY_MS"
	EnvShowHeatmap = "MAZEWALK_SHOW_HEATMAP"
	EnvLogLevel    = "MAZEWALK_LOG_LEVEL"
	EnvLogFormat   = "MAZEWALK_LOG_FORMAT"
)

// hclFile represents the top-level structure of a config file for decoding.
type hclFile struct {
	Maze   *hclMaze   `hcl:"maze,block"`
	Search *hclSearch `hcl:"search,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclMaze struct {
	Rows *int   `hcl:"rows,optional"`
	Cols *int   `hcl:"cols,optional"`
	Seed *int64 `hcl:"seed,optional"`
}

type hclSearch struct {
	Strategy    *string `hcl:"strategy,optional"`
	DelayMS     *int    `hcl:"delay_ms,optional"`
	ShowHeatmap *bool   `hcl:"show_heatmap,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load resolves a Config. path names an HCL file and may be empty.
// envFiles are dotenv files; a missing file is an error only when named
// explicitly, otherwise ".env" in the working directory is tried quietly.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	dotenv, err := readDotenv(envFiles)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err = applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeFile parses an HCL config file and overlays the attributes it sets.
func decodeFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("config: failed to parse HCL file %s: %s", path, diags.Error())
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("config: failed to decode HCL file %s: %s", path, diags.Error())
	}

	if b := parsed.Maze; b != nil {
		setInt(&cfg.Rows, b.Rows)
		setInt(&cfg.Cols, b.Cols)
		if b.Seed != nil {
			cfg.Seed = *b.Seed
		}
	}
	if b := parsed.Search; b != nil {
		setString(&cfg.Strategy, b.Strategy)
		if b.DelayMS != nil {
			cfg.Delay = time.Duration(*b.DelayMS) * time.Millisecond
		}
		if b.ShowHeatmap != nil {
			cfg.ShowHeatmap = *b.ShowHeatmap
		}
	}
	if b := parsed.Log; b != nil {
		setString(&cfg.LogLevel, b.Level)
		setString(&cfg.LogFormat, b.Format)
	}
	return nil
}

func readDotenv(files []string) (map[string]string, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil, nil
		}
		files = []string{".env"}
	}
	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read dotenv %v: %w", files, err)
	}
	return env, nil
}

// applyEnv overlays MAZEWALK_* values found through lookup.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvCols, &cfg.Cols},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, e.key, err)
			}
			*e.dst = n
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvDelayMS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, EnvDelayMS, err)
		}
		cfg.Delay = time.Duration(n) * time.Millisecond
	}
	if v, ok := lookup(EnvShowHeatmap); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalid, EnvShowHeatmap, err)
		}
		cfg.ShowHeatmap = b
	}
	if v, ok := lookup(EnvStrategy); ok {
		cfg.Strategy = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
