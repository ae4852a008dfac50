package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflyer/internal/platform/web"
	"github.com/vovakirdan/skyflyer/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Stream the game to browser clients",
	Long: `Run one game and stream it over a websocket.

Endpoints:
  GET /ws       - msgpack frames {seq, state, scene, events} out,
                  JSON commands {"type": "impulse"|"pause"|"restart"|"resize",
                  "repeat": bool, "width": n, "height": n} in
  GET /healthz  - liveness probe

Commands flagged as key repeats are ignored.

Examples:
  skyflyer web
  skyflyer web --addr :9000 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "skyflyer-web")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := serveWeb(ctx, logger)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the run history database.
var openStore = storage.Open

// serveWeb runs the bridge until ctx is cancelled. The runs database is
// closed before it returns.
func serveWeb(ctx context.Context, logger *log.Logger) error {
	store, err := openStore(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	srv := web.NewServer(newSimulation(loadTuning())(), web.Config{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Store:    store,
		Logger:   logger,
	})
	return srv.ListenAndServe(ctx, flagWebAddr)
}
