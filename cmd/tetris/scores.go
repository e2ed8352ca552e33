package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Without a variant, shows a summary of every variant played so far.
With a variant, shows its top runs.

Examples:
  tetris scores
  tetris scores tetris_marathon
  tetris scores tetris --limit 25
  tetris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a variant")
		}
		return printSummary(out, store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'tetris list' to see them", gameID)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(out, "Cleared all scores for %s.\n", gameID)
		return nil
	}
	return printTop(out, store, gameID)
}

func printTop(out io.Writer, store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Rows", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-6d  %-5d  %s\n",
			i+1, e.Score, e.Rows, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
	return nil
}

func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.AllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Scores by variant:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s  %-6s  %-10s  %-8s  %s\n", "Variant", "Games", "Best", "Avg", "Last played")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-16s  %-6d  %-10s  %-8s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-16s  %-6d  %-10d  %-8.0f  %s\n",
			g.ID, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
