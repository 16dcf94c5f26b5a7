package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapfall/internal/games/trapfall"
	"github.com/vovakirdan/trapfall/internal/platform/tui"
	"github.com/vovakirdan/trapfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or classic Trap Fall when none is given.

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Up/W/K          - Jump
  P                     - Pause
  R                     - Restart (new run)
  Esc/B                 - Leave
  Q/Ctrl+C              - Quit
  Ctrl+S                - Screenshot

Examples:
  trapfall play
  trapfall play trapfall_daily
  trapfall play --seed 1234
  trapfall play --config ./my-trapfall.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := trapfall.ClassicID
	if len(args) == 1 {
		mode = args[0]
	}

	if err := play(mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one mode until the player leaves. Deferred cleanup runs before
// the caller decides whether to exit.
func play(mode string) error {
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'trapfall list' to see available modes", mode)
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		logger.Error("game stopped", "mode", mode, "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
