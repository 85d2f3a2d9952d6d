// Command goban-server runs the HTTP façade (internal/api) over the board
// engine, wiring config + logging into a concrete cmd/ binary the same way
// goban-gtp does.
package main

import (
	"flag"
	"os"

	"github.com/go-kit/kit/log/level"

	"github.com/skybrian/goban/internal/api"
	"github.com/skybrian/goban/internal/config"
	"github.com/skybrian/goban/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("goban-server: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	games := api.NewGameStore()
	server := api.NewServer(games)

	level.Info(logger).Log("msg", "goban-server listening", "addr", cfg.ListenAddr)
	if err := server.Start(cfg.ListenAddr); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
