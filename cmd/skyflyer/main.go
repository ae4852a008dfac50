// skyflyer is a flappy-style arcade with power-ups, mini-bosses and ten
// levels, played in the terminal, over SSH or through a websocket bridge.
//
// Usage:
//
//	skyflyer play            - Play in this terminal
//	skyflyer serve           - Start SSH server for remote play
//	skyflyer web             - Stream the game to browser clients
//	skyflyer scores          - Show the best runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyflyer/runs.db)
//	--config <path>      - Tuning YAML (default: search path, then built-in)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
	"github.com/vovakirdan/skyflyer/internal/games/skyflyer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyflyer",
	Short: "Flappy Quest: Sky Worlds - flap through ten levels in your terminal",
	Long: `Flappy Quest: Sky Worlds is a friendly Flappy adventure with power-ups,
mini-bosses, and 10 levels to victory.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Stream the game to browser clients over a websocket
  scores   - View the best runs

Examples:
  skyflyer play
  skyflyer play --config ./my-tuning.yaml --watch
  skyflyer serve --ssh :2222
  skyflyer web --addr :8080
  skyflyer scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyflyer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the structured logger shared by a command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadTuning reads the tuning YAML or exits.
func loadTuning() config.SkyflyerConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newSimulation returns a factory of games sharing one tuning.
func newSimulation(cfg config.SkyflyerConfig) func() core.Simulation {
	return func() core.Simulation {
		return skyflyer.NewWithConfig(cfg)
	}
}
