// Command goban-gtp runs a Go Text Protocol shell over stdin/stdout, wiring
// internal/gtp's engine to the standard streams the same way gongo's own
// `Run(robot, os.Stdin, os.Stdout)` entry point did.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/go-kit/kit/log/level"

	"github.com/skybrian/goban/internal/config"
	"github.com/skybrian/goban/internal/gtp"
	"github.com/skybrian/goban/internal/logging"
	"github.com/skybrian/goban/internal/playout"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("goban-gtp: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}
	pool := playout.New(workers, 1)

	engine, err := gtp.NewEngine(cfg.BoardSize, cfg.Komi, cfg.ProhibitSuicide, pool, cfg.SampleCount, 1)
	if err != nil {
		level.Error(logger).Log("msg", "failed to create engine", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "goban-gtp ready", "board_size", cfg.BoardSize, "workers", workers)
	if err := gtp.Run(context.Background(), engine, os.Stdin, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "gtp session ended with error", "err", err)
		os.Exit(1)
	}
}
