package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/platform/sound"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// newLogger builds the command logger. Terminal play owns the screen, so
// logs there go to --log-file or nowhere.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "brickbreaker",
	})
	return logger, closeFn, nil
}

// openStore opens the scores database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// terminalRuntime sizes the runtime config to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newSoundPlayer returns an initialized player, or nil when sound is off or
// the audio device cannot be opened.
func newSoundPlayer(logger *log.Logger) *sound.Player {
	if !flagSound {
		return nil
	}
	p := sound.NewPlayer(logger)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return p
}

// selection turns the mode flags into a game selection. A zero level keeps
// the configured start level.
func selection(level int, endless bool) (tui.Selection, error) {
	if level < 0 || level > brickbreaker.TotalLevels {
		return tui.Selection{}, fmt.Errorf("level must be between 1 and %d", brickbreaker.TotalLevels)
	}
	sel := tui.Selection{
		Mode:       brickbreaker.ModeCampaign,
		Level:      level - 1,
		Difficulty: config.DifficultyPreset(flagDifficulty),
	}
	if endless {
		sel.Mode = brickbreaker.ModeEndless
	}
	return sel, nil
}
