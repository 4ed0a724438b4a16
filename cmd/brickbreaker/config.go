package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Prints the built-in configuration. Save it to
~/.brickbreaker/configs/brickbreaker.yaml, or pass it with --config,
to tune the paddle, ball, bricks, powerups and scoring.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
