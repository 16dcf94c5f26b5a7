package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapfall/internal/config"
	"github.com/vovakirdan/trapfall/internal/games/trapfall"
)

var (
	flagLevel int
	flagWidth float64
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print a generated level as YAML",
	Long: `Generate one level and print its layout as YAML: seeds, platform
counts per kind and every platform with its bounds.

The base seed comes from --seed, or the config when --seed is unset.

Examples:
  trapfall level
  trapfall level --level 5
  trapfall level --level 3 --seed 1234 --width 720`,
	Args: cobra.NoArgs,
	Run:  runLevel,
}

func init() {
	levelCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number (>= 1)")
	levelCmd.Flags().Float64Var(&flagWidth, "width", 0, "World width (0 = config value)")
}

func runLevel(_ *cobra.Command, _ []string) {
	if flagLevel < 1 {
		fmt.Fprintln(os.Stderr, "Error: --level must be at least 1")
		os.Exit(1)
	}

	cfg, err := config.LoadTrapfall(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.BaseSeed
	if flagSeed != 0 {
		seed = flagSeed
	}
	width := cfg.World.Width
	if flagWidth > 0 {
		width = flagWidth
	}

	layout := trapfall.BuildLayout(flagLevel, seed, width)
	if err := layout.WriteYAML(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing layout: %v\n", err)
		os.Exit(1)
	}
}
