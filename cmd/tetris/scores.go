package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or for every mode when none is given.

Examples:
  tetris scores
  tetris scores tetris_classic --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show per mode")
}

func runScores(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(args) == 1 {
		info, ok := registry.Info(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
			os.Exit(1)
		}
		modes = []registry.GameInfo{info}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, store, mode, flagScoresLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(out io.Writer, store *storage.Store, mode registry.GameInfo, limit int) error {
	scores, err := store.TopScores(mode.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", mode.Title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'tetris play %s' to set the first high score!\n", mode.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-5d  %s\n",
			i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Total lines: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
	return nil
}
