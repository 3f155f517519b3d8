package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/mazewalk/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options are the command-line settings that are not part of config.Config.
type options struct {
	frames bool
	every  int
	clear  bool
}

// parse processes command-line arguments on top of the loaded configuration.
// It returns the resolved config, the CLI-only options, whether the program
// should exit cleanly, or an ExitError.
func parse(args []string, output io.Writer) (config.Config, options, bool, error) {
	fs := flag.NewFlagSet("mazewalk", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
mazewalk - carve a random maze and solve it with a chosen strategy.

Usage:
  mazewalk [options]

Settings are read from the HCL file given by -config, then from dotenv
files and MAZEWALK_* environment variables, then from these flags.

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	cfgPath := fs.String("config", "", "Path to an HCL configuration file.")
	envPath := fs.String("env", "", "Path to a dotenv file (default: ./.env when present).")
	rows := fs.Int("rows", def.Rows, "Grid rows; even values are rounded up.")
	cols := fs.Int("cols", def.Cols, "Grid columns; even values are rounded up.")
	seed := fs.Int64("seed", def.Seed, "Generation seed; 0 picks one from the clock.")
	strategy := fs.String("strategy", def.Strategy, "Search strategy: 'bfs', 'dfs', 'greedy' or 'bug2'.")
	delay := fs.Duration("delay", def.Delay, "Pause after each visible step.")
	heatmap := fs.Bool("heatmap", def.ShowHeatmap, "Overlay the greedy distance field on rendered frames.")
	logLevel := fs.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")

	var opt options
	fs.BoolVar(&opt.frames, "frames", false, "Render a frame for every visible step.")
	fs.IntVar(&opt.every, "every", 1, "Render only every n-th frame.")
	fs.BoolVar(&opt.clear, "clear", false, "Clear the terminal before each frame.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, options{}, true, nil
		}
		return config.Config{}, options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return config.Config{}, options{}, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	var envFiles []string
	if *envPath != "" {
		envFiles = append(envFiles, *envPath)
	}
	cfg, err := config.Load(*cfgPath, envFiles...)
	if err != nil {
		return config.Config{}, options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Only flags given explicitly override the file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "seed":
			cfg.Seed = *seed
		case "strategy":
			cfg.Strategy = *strategy
		case "delay":
			cfg.Delay = *delay
		case "heatmap":
			cfg.ShowHeatmap = *heatmap
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if err = cfg.Validate(); err != nil {
		return config.Config{}, options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if opt.every < 1 {
		opt.every = 1
	}
	return cfg, opt, false, nil
}
