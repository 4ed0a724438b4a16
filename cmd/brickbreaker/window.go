package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/gui"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var (
	flagWindowLevel   int
	flagWindowEndless bool
	flagScale         float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Brick Breaker in a desktop window at the full playfield resolution.

Controls:
  Mouse, Left/Right, A/D  - Move paddle
  Click, Space/Up         - Launch the ball
  P                       - Pause
  R/Enter                 - Restart
  M                       - Mute sound
  Esc/Q                   - Quit (when paused or game over)

Examples:
  brickbreaker window
  brickbreaker window --level 10 --scale 1.5
  brickbreaker window --endless --sound=false`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowLevel, "level", 0, "Start on this level (1-15)")
	windowCmd.Flags().BoolVar(&flagWindowEndless, "endless", false, "Play endless mode")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	sel, err := selection(flagWindowLevel, flagWindowEndless)
	if err != nil {
		return err
	}

	cfg := terminalRuntime()
	game, err := tui.NewGame(sel, cfg, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := gui.Options{Store: store, Logger: logger, Scale: flagScale}
	if player := newSoundPlayer(logger); player != nil {
		defer player.Close()
		opts.Sink = player
	}
	return gui.Run(game, opts)
}
