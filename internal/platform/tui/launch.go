package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// NewGame builds a game for a menu selection. The selection is applied to
// this game only, so concurrent SSH sessions never see each other's choices.
func NewGame(sel Selection, runtime core.RuntimeConfig, logger *log.Logger) (*brickbreaker.Game, error) {
	cfg, err := brickbreaker.LoadConfig()
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultBrickBreakerConfig()
	}
	if sel.Difficulty != "" {
		config.ApplyPreset(&cfg, sel.Difficulty)
	}
	if sel.Level >= 0 {
		cfg.Gameplay.StartLevel = sel.Level
	}

	session, err := brickbreaker.NewSession(cfg, sel.Mode, brickbreaker.NewSimpleRNG(runtime.Seed))
	if err != nil {
		return nil, err
	}

	game := brickbreaker.New()
	if sel.Mode == brickbreaker.ModeEndless {
		game = brickbreaker.NewEndless()
	}
	game.SetLogger(logger)
	game.UseSession(session)
	return game, nil
}
