// brickbreaker is a brick breaker game for the terminal and the desktop.
//
// Usage:
//
//	brickbreaker play          - Play in the terminal (menu unless --level or --endless)
//	brickbreaker window        - Play in a desktop window
//	brickbreaker serve         - Start SSH server for remote play
//	brickbreaker scores        - Show high scores and recent runs
//	brickbreaker levels        - Describe the campaign levels
//	brickbreaker list          - List game modes
//	brickbreaker config        - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.brickbreaker/scores.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
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
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - 15 levels of bricks, powerups and combos",
	Long: `Brick Breaker Pro is a brick breaker with 15 procedural levels,
falling powerups, combo scoring and particle effects. It runs in the
terminal, in a desktop window, or over SSH.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  levels   - Describe the campaign levels
  list     - Show the game modes
  config   - Print the default config

Examples:
  brickbreaker play
  brickbreaker play --level 5 --difficulty hard
  brickbreaker window --endless
  brickbreaker serve --ssh :2222
  brickbreaker scores --runs`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagDifficulty != "" {
			if _, ok := config.ParsePreset(flagDifficulty); !ok {
				return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
			}
		}
		brickbreaker.SetConfigPath(flagConfig)
		brickbreaker.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", true, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
