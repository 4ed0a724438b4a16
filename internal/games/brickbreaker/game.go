package brickbreaker

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel overrides the configured start level when non-negative.
var startLevel = -1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel picks the level new sessions start on. Pass -1 to use the
// configured value.
func SetStartLevel(level int) {
	startLevel = level
}

// LoadConfig resolves the configuration new games use: the config file
// search, then the difficulty preset, then the start level override.
func LoadConfig() (config.BrickBreakerConfig, error) {
	cfg, err := config.LoadBrickBreaker(configPath)
	if err != nil {
		return config.DefaultBrickBreakerConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if startLevel >= 0 {
		cfg.Gameplay.StartLevel = startLevel
	}
	return cfg, cfg.Validate()
}

// Game adapts a Session to the registry interface used by the frontends.
type Game struct {
	mode    Mode
	session *Session
	runtime core.RuntimeConfig
	events  []Event
	logger  *log.Logger
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign, logger: log.New(io.Discard)}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, logger: log.New(io.Discard)}
}

// SetLogger routes game logging to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "brickbreaker_endless"
	}
	return "brickbreaker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Brick Breaker (Endless)"
	}
	return "Brick Breaker"
}

// Reset starts a new session. A bad config file is logged and replaced by
// the built-in defaults so the game always starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultBrickBreakerConfig()
	}

	session, err := NewSession(cfg, g.mode, NewSimpleRNG(runtime.Seed))
	if err != nil {
		g.logger.Error("session rejected config, using defaults", "err", err)
		session, _ = NewSession(config.DefaultBrickBreakerConfig(), g.mode, NewSimpleRNG(runtime.Seed))
	}
	g.session = session
	g.events = nil
	g.logger.Debug("session started", "game", g.ID(), "level", session.Level()+1, "seed", runtime.Seed)
}

// UseSession replaces the session directly, bypassing config loading.
func (g *Game) UseSession(s *Session) {
	g.session = s
	g.events = nil
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	s := g.session

	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.HasPointer {
		s.SetPaddleTarget(in.Pointer * s.cfg.Playfield.Width)
	}
	s.SetMovement(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	if in.Has(core.ActionLaunch) {
		s.Launch()
	}

	g.events = s.Tick(elapsed)
	g.logEvents()
	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents() {
	for _, e := range g.events {
		switch e.Kind {
		case EventLevelClear:
			g.logger.Info("level cleared", "level", e.Level+1, "bonus", e.Bonus, "score", g.session.Score())
		case EventLifeLost:
			g.logger.Debug("life lost", "lives", g.session.Lives())
		case EventGameOver:
			g.logger.Info("game over", "won", e.Won, "score", g.session.Score(), "level", g.session.Level()+1)
		case EventRestart:
			g.logger.Debug("restart")
		}
	}
}

// Events returns the events raised by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// View snapshots the session for drawing.
func (g *Game) View() View {
	return g.session.View()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		GameOver: s.GameOver(),
		Won:      s.Won(),
		Paused:   s.Paused(),
	}
}

// Register the games with the registry
func init() {
	registry.Register("brickbreaker", func() registry.Game {
		return New()
	})
	registry.Register("brickbreaker_endless", func() registry.Game {
		return NewEndless()
	})
}
