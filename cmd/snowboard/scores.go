package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snowboard/internal/registry"
	"github.com/vovakirdan/tui-snowboard/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 runs for the specified mode.

Examples:
  snowboard scores slopestyle
  snowboard scores freeride
  snowboard scores freeride --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := args[0]

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'snowboard list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared all %s runs.\n", title)
		return
	}

	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Ride 'snowboard play %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-6s  %-6s  %s\n", "Rank", "Score", "Best Trick", "Air", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-6s  %-6s  %s\n", "----", "-----", "----------", "---", "----", "----")

	for i, r := range runs {
		trick := r.BestTrick
		if trick == "" {
			trick = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-16s  %-6s  %-6s  %s\n",
			i+1, r.Score, trick,
			fmt.Sprintf("%.1fs", r.MaxAir),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.ModeStats(mode); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f  |  Biggest air: %.1fs\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.MaxAir)
	}
}
