// Command goban-bench measures playout throughput, reporting playouts per
// second the same way gongo's multirobot.go logs its win-rate sampling runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/skybrian/goban/internal/board"
	"github.com/skybrian/goban/internal/config"
	"github.com/skybrian/goban/internal/playout"
)

func usageError() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-samples N] [-config path]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	samples := flag.Int("samples", 0, "override sample_count from config")
	flag.Usage = usageError
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "goban-bench:", err)
		os.Exit(1)
	}
	if *samples > 0 {
		cfg.SampleCount = *samples
	}

	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}

	root, err := board.New(cfg.BoardSize, cfg.Komi, cfg.ProhibitSuicide)
	if err != nil {
		fmt.Fprintln(os.Stderr, "goban-bench:", err)
		os.Exit(1)
	}

	pool := playout.New(workers, uint64(time.Now().UnixNano()))
	start := time.Now()
	results := pool.Simulate(context.Background(), root, board.Black, cfg.SampleCount)
	elapsed := time.Since(start)

	rate := float64(len(results)) / (float64(elapsed) / math.Pow10(9))
	fmt.Printf("playouts/second: %.0f\n", rate)
	fmt.Printf("board size: %d, workers: %d, samples: %d\n", cfg.BoardSize, workers, len(results))
}
