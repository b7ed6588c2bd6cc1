package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snowboard/internal/platform/tui"
	"github.com/vovakirdan/tui-snowboard/internal/registry"
	"github.com/vovakirdan/tui-snowboard/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Ride a mode",
	Long: `Start riding the specified mode.

Controls:
  Left/Right, A/D  - Turn (spin while airborne)
  Up/Down, W/S     - Frontflip / backflip while airborne
  Q/E              - Spin boost left / right
  Space            - Hold to charge, release to jump
  C                - Carve (brake)
  P                - Pause
  R                - Restart (after the run ends)
  Esc/B            - Back (when paused or after the run)
  Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, forgiving landings, no crevasses
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, strict landings, more crevasses
  fixed  - No progression, stays at config's initial level

Examples:
  snowboard play slopestyle
  snowboard play freeride --difficulty hard
  snowboard play slopestyle --seed 42
  snowboard play slopestyle --config ./my-snowboard.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
