package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and play",
	Long: `Start in interactive menu mode.

The table compares the variants. Use arrow keys or j/k to move, Enter to
play. After a game ends you return to the menu.

Examples:
  platformer menu
  platformer menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	items, err := menuItems()
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	for {
		selected, updated, err := tui.RunMenu(items, cfg)
		if err != nil {
			return err
		}
		cfg = updated

		if selected == nil {
			return nil
		}

		game, err := registry.Create(selected.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		logger.Info("starting", "game", selected.GameID, "variant", selected.Variant)
		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}

// menuItems loads every variant's config so the menu can compare them.
func menuItems() ([]tui.MenuItem, error) {
	variants := []config.Variant{config.VariantClassic, config.VariantDouble}
	items := make([]tui.MenuItem, 0, len(variants))

	for _, v := range variants {
		id := tui.VariantGameIDs[v]
		game, err := registry.Create(id)
		if err != nil {
			return nil, fmt.Errorf("creating game: %w", err)
		}
		cfg, err := config.Load(v, "")
		if err != nil {
			return nil, err
		}
		items = append(items, tui.MenuItem{
			GameID:  id,
			Title:   game.Title(),
			Variant: v,
			Config:  cfg,
		})
	}
	return items, nil
}
