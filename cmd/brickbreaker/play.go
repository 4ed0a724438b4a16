package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var (
	flagLevel   int
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Brick Breaker in the terminal.

Without --level or --endless a menu lets you pick the mode, the start
level and the difficulty, and view high scores.

Controls:
  Left/Right, A/D  - Move paddle (the mouse works too)
  Space/Up, click  - Launch the ball
  P                - Pause
  R/Enter          - Restart
  Esc/B            - Back to menu (when paused or game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - Config defaults
  hard   - 2 lives, narrow paddle, fast ball, speed ramp on
  fixed  - Config defaults with the speed ramp off

Examples:
  brickbreaker play
  brickbreaker play --level 7
  brickbreaker play --endless --difficulty hard
  brickbreaker play --config ./my-bricks.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level (1-15) and skip the menu")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode and skip the menu")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store, Logger: logger}
	if player := newSoundPlayer(logger); player != nil {
		defer player.Close()
		opts.Sink = player
	}

	cfg := terminalRuntime()
	if flagLevel == 0 && !flagEndless {
		return tui.RunSession(cfg, config.DifficultyPreset(flagDifficulty), opts)
	}

	sel, err := selection(flagLevel, flagEndless)
	if err != nil {
		return err
	}
	game, err := tui.NewGame(sel, cfg, logger)
	if err != nil {
		return err
	}
	return tui.Run(game, cfg, opts)
}
