package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
	"github.com/vovakirdan/skyflyer/internal/platform/tui"
	"github.com/vovakirdan/skyflyer/internal/storage"
)

var (
	flagWatch   bool
	flagLogFile string
	flagDirect  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the title menu and play in this terminal.

Controls:
  Space/W/Up   - Flap
  Click/Tap    - Flap
  P            - Pause/Resume
  R            - Restart
  Esc/B        - Back to menu (paused or finished)
  Q/Ctrl+C     - Quit

Collect stars to auto-fire at bosses. Rings give a shield that blocks one hit.

With --watch, edits to the tuning YAML are picked up while playing and
apply from the next level.

Examples:
  skyflyer play
  skyflyer play --direct --seed 42
  skyflyer play --config ./configs/skyflyer.yaml --watch --log-file play.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning YAML when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDirect, "direct", false, "Skip the title menu")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "skyflyer")

	tuning := loadTuning()
	sim := newSimulation(tuning)()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	watcher := startWatcher(logger)

	runErr := tui.Run(sim, cfg, tui.SessionOptions{
		Store:    store,
		Logger:   logger,
		Watcher:  watcher,
		SkipMenu: flagDirect,
	})

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startWatcher watches the active tuning file when --watch is set.
// Returns nil when there is nothing to watch.
func startWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := config.Resolve(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs a tuning file; using built-in defaults")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not watch %s: %v\n", path, err)
		return nil
	}
	logger.Info("watching config", "path", path)
	return w
}
