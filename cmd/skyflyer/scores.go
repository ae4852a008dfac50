package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflyer/internal/games/skyflyer"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs: score, level reached and whether the run
beat all levels.

Examples:
  skyflyer scores
  skyflyer scores --limit 25
  skyflyer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := printScores(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the run table to w. The runs database is closed
// before it returns.
func printScores(w io.Writer) error {
	game := skyflyer.New()
	gameID := game.ID()

	store, err := openStore(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(w, "All runs cleared.")
		return nil
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", game.Title())
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'skyflyer play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-7s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	for i, r := range runs {
		result := "-"
		if r.Victory {
			result = "Victory"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-5d  %-7s  %s\n", i+1, r.Score, r.Level, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if best, err := store.BestLevel(gameID); err == nil {
		fmt.Fprintf(w, "Deepest level: %d\n", best)
	}
	return nil
}
