// platformer runs Penguin Run, a side-scrolling platformer, in the terminal.
//
// Usage:
//
//	platformer list                 - List available games
//	platformer play [game]          - Play a game (default: penguin)
//	platformer menu                 - Pick a variant interactively
//	platformer simulate [game]      - Run a headless autopilot session
//	platformer defaults [variant]   - Print the embedded default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Penguin Run - a platformer in your terminal",
	Long: `Penguin Run is a side-scrolling platformer for the terminal.
Guide the penguin across a generated level, stomp or snowball the
chickens on the way and find Gasparin the ghost at the far end.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive variant picker
  simulate  - Headless autopilot run
  defaults  - Print the default config for a variant

Examples:
  platformer play
  platformer play penguin_double --seed 42
  platformer menu
  platformer simulate --ticks 3000 --log-level debug
  platformer defaults double > ~/.platformer/configs/double.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the logger from the global flags. Without --log-file it
// writes to fallback. The returned close function must always be called.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	platformer.SetLogger(logger)
	return logger, closeFn, nil
}

// variantOf returns the variant a registered game ID plays.
func variantOf(gameID string) config.Variant {
	if gameID == "penguin_double" {
		return config.VariantDouble
	}
	return config.VariantClassic
}
