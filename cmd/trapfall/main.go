// trapfall is a terminal platformer: fall through a seeded tower of
// platforms, some of which lie, before the fog catches up.
//
// Usage:
//
//	trapfall list              - List available modes
//	trapfall play [mode]       - Play a mode (default: trapfall)
//	trapfall menu              - Pick a mode interactively
//	trapfall serve             - Start SSH server for remote play
//	trapfall scores [mode]     - Show the run board
//	trapfall level             - Print a generated level as YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Override the base seed
//	--db <path>        - Run board database (default: in memory)
//	--config <path>    - Custom YAML or TOML game config
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trapfall/internal/config"
	"github.com/vovakirdan/trapfall/internal/core"
	"github.com/vovakirdan/trapfall/internal/games/trapfall"
	"github.com/vovakirdan/trapfall/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string

	appConfig config.AppConfig
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	cfg, err := config.LoadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	appConfig = cfg

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", appConfig.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base seed override (0 = mode default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", appConfig.DBPath, "Run board database path (:memory: keeps it in memory)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", appConfig.LogFile, "Write logs to this file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trapfall",
	Short: "Trap Fall - a falling platformer in your terminal",
	Long: `Trap Fall drops you down a seeded tower of platforms.
Some crumble, some kill, some only appear when you get close.
Reach the goal platform before the fog reaches you.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the run board
  level    - Print a generated level as YAML

Examples:
  trapfall play
  trapfall play trapfall_daily
  trapfall menu --db ~/.trapfall/runs.db
  trapfall serve --ssh :2222
  trapfall level --level 5 --seed 41`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		trapfall.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelCmd)
}

// newLogger returns a logger writing to --log-file, or one that discards
// everything so the alternate screen stays clean. The returned closer must
// be called when done.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "trapfall",
	})
	return logger, f, nil
}

// runtimeConfig builds the config for a local game from the terminal size
// and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   os.Getenv("USER"),
	}
}

// openStore opens the run board. Failures are reported and play continues
// without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run board: %v\n", err)
		logger.Warn("could not open run board", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
