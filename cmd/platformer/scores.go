package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresSort  string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the best runs of a game mode, or of every mode when none is given.

Examples:
  platformer scores
  platformer scores platformer_endless
  platformer scores platformer --limit 25
  platformer scores platformer_endless --sort stage
  platformer scores platformer --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresSort, "sort", "score", "Order runs by score, stage or recent")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	var modes []registry.GameInfo
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown mode %q (run 'platformer list')", args[0])
		}
		modes = []registry.GameInfo{{ID: args[0], Title: registry.Title(args[0])}}
	} else {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a mode")
		}
		modes = registry.List()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(modes[0].ID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintf(out, "Cleared all runs of %s.\n", modes[0].Title)
		return nil
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, store, mode); err != nil {
			return err
		}
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store, mode registry.GameInfo) error {
	scores, err := store.Runs(mode.ID, storage.ParseOrder(flagScoresSort), flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", mode.Title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Stage", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Stage, dateStr)
	}

	fmt.Fprintln(out)
	stats, err := store.Stats(mode.ID)
	if err == nil {
		fmt.Fprintf(out, "Best: %d  Best stage: %d  Runs: %d  Avg: %.0f\n",
			stats.HighScore, stats.BestStage, stats.Runs, stats.AvgScore)
	}
	return nil
}
