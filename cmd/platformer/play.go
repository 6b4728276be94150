package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: penguin).

Controls:
  Left/Right, A/D  - Walk
  Up/W             - Jump (press again in the air for a double jump)
  Space/F          - Throw a snowball
  Enter            - Start from the prompt
  P/Esc            - Pause
  R                - Restart after game over or victory
  Q/Ctrl+C         - Quit
  Mouse            - Click the on-screen buttons, or the overlay to restart

Examples:
  platformer play
  platformer play penguin_double
  platformer play penguin --config ./my-penguin.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "penguin"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'platformer list' to see available games)", gameID)
	}

	// Report a broken config before the alternate screen hides it.
	if flagConfig != "" {
		if _, err := config.LoadFile(variantOf(gameID), flagConfig); err != nil {
			return err
		}
	}
	platformer.SetConfigPath(flagConfig)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
