// snowboard is a terminal snowboarding game: carve down a generated slope,
// hit kickers, and land spins and flips for points.
//
// Usage:
//
//	snowboard list              - List available modes
//	snowboard play <mode>       - Ride a mode
//	snowboard menu              - Start menu to pick modes interactively
//	snowboard serve             - Start SSH server for remote play
//	snowboard scores <mode>     - Show high scores for a mode
//	snowboard sim               - Run a scripted headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set course seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.snowboard/runs.db)
//	--config <path>       - Custom snowboard.yaml
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snowboard/internal/config"
	"github.com/vovakirdan/tui-snowboard/internal/core"
	"github.com/vovakirdan/tui-snowboard/internal/games/snowboard"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is built from --log-level before any command runs.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snowboard",
	Short: "Terminal snowboarding - carve, jump, spin",
	Long: `Snowboard is a terminal game: ride a generated mountain, launch off
kickers and land spins and flips for points.

Available commands:
  list     - Show all available modes
  play     - Ride a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless scripted run, logs physics events

Examples:
  snowboard list
  snowboard play slopestyle
  snowboard menu
  snowboard serve --ssh :2222
  snowboard sim --mode freeride --script "jump:0.5,left:0.3"`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Course seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snowboard/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snowboard.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive commands log nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup builds the logger and hands the config flags to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// The full-screen commands own the terminal, so they only log to a file.
	var out io.Writer = os.Stderr
	switch cmd.Name() {
	case "play", "menu":
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snowboard",
		Level:           level,
	})

	snowboard.SetLogger(logger)
	snowboard.SetConfigPath(flagConfig)
	snowboard.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the run to the terminal and reads key hold timings
// from the snowboard config.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if sc, err := config.LoadSnowboard(flagConfig); err == nil {
		cfg.KeyHold = sc.Run.HoldInitial
		cfg.KeyRepeat = sc.Run.HoldRepeat
	} else {
		logger.Warn("using default key timings", "err", err)
	}
	return cfg
}
