// Command mazewalk carves a random maze and solves it with one of the
// bfs, dfs, greedy or bug2 strategies, printing the solved grid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mazewalk/internal/textsink"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/runner"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// main is the entrypoint for the mazewalk command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// Frames and the result go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, opt, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := cfg.Logger(logW)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	strategy, err := cfg.StrategyValue()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	m, err := maze.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	var sink visual.Sink = visual.Nop
	var frames *textsink.Sink
	if opt.frames {
		frames = textsink.New(outW, m,
			textsink.WithHeatmap(cfg.ShowHeatmap),
			textsink.WithEvery(opt.every),
			textsink.WithClear(opt.clear))
		sink = frames
	}

	r := runner.New(m,
		runner.WithSink(sink),
		runner.WithDelay(cfg.Delay),
		runner.WithLogger(logger))

	task, err := r.Generate(ctx, cfg.CarveOptions()...)
	if err != nil {
		return err
	}
	if _, err = task.Wait(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	task, err = r.Search(ctx, strategy, cfg.SearchOptions()...)
	if err != nil {
		return err
	}
	res, err := task.Wait()
	if frames != nil {
		if ferr := frames.Flush(); ferr != nil {
			logger.Warn("frame output failed", "error", ferr)
		}
	} else {
		fmt.Fprint(outW, m.String())
	}

	switch {
	case err == nil:
		fmt.Fprintf(outW, "%s: path %d cells, explored %d, steps %d\n",
			strategy, len(res.Path), res.Explored, res.Steps)
		return nil
	case traverse.IsNoRoute(err):
		return &ExitError{Code: 3, Message: fmt.Sprintf("%s: %v", strategy, err)}
	default:
		return fmt.Errorf("%s: %w", strategy, err)
	}
}
