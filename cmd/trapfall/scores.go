package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapfall/internal/registry"
	"github.com/vovakirdan/trapfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the run board",
	Long: `Display the best runs for a mode, or a summary of every mode.

The board is in memory by default, so pass --db to read a saved one.

Examples:
  trapfall scores --db ~/.trapfall/runs.db
  trapfall scores trapfall --db ~/.trapfall/runs.db
  trapfall scores trapfall_daily --limit 20 --db ./runs.db
  trapfall scores trapfall --clear --db ./runs.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	if err := showScores(os.Stdout, flagDBPath, mode, flagScoresLimit, flagScoresClear); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints the board of one mode, or a summary when mode is empty.
// With clearRuns set it deletes the mode's runs instead.
func showScores(w io.Writer, dbPath, mode string, limit int, clearRuns bool) error {
	if mode == "" && clearRuns {
		return errors.New("--clear needs a mode")
	}
	if mode != "" && !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'trapfall list' to see available modes", mode)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening run board: %w", err)
	}
	defer store.Close()

	switch {
	case mode == "":
		return printSummary(w, store)
	case clearRuns:
		if err := store.ClearRuns(mode); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared runs for %s.\n", mode)
		return nil
	default:
		return printRuns(w, store, mode, limit)
	}
}

func printRuns(w io.Writer, store *storage.Store, mode string, limit int) error {
	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	runs, err := store.TopRuns(mode, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run Board - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'trapfall play %s' to set the first run!\n", mode)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-5s  %-8s  %s\n", "Rank", "Player", "Level", "Attempts", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-5s  %-8s  %s\n", "----", "------", "-----", "--------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-16s  %-5d  %-8d  %s\n",
			i+1, player, r.Level, r.Attempts, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ModeStats(mode)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Best: level %d  Avg attempts: %.1f\n",
			stats.Runs, stats.BestLevel, stats.AvgAttempts)
	}
	return nil
}

func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.AllModeStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run Board\n\n")

	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-12s  %s\n", "Mode", "Runs", "Best", "Avg attempts", "Last played")
	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-12s  %s\n", "----", "----", "----", "------------", "-----------")

	// Registry order keeps the output stable
	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-16s  %-5d  %-5d  %-12.1f  %s\n",
			g.ID, stats.Runs, stats.BestLevel, stats.AvgAttempts, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
