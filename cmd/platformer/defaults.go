package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults [variant]",
	Short: "Print the default config for a variant",
	Long: `Prints the embedded YAML profile of a variant (classic or double).
Save it under ~/.platformer/configs/<variant>.yaml or ./configs/<variant>.yaml
and edit it to tune the game.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDefaults,
}

func runDefaults(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	v, err := config.ParseVariant(name)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(config.GetDefaultYAML(v)))
	return nil
}
