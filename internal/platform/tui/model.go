package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Terminals only report key presses, so a press keeps the paddle moving
// until the next auto-repeat arrives.
const moveHold = 160 * time.Millisecond

// EventSink receives the events raised by each simulation tick.
type EventSink interface {
	Handle(events []brickbreaker.Event)
}

// Options holds the optional collaborators of a GameModel.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sink   EventSink
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// GameModel is the Bubble Tea model that runs one Brick Breaker game.
type GameModel struct {
	game       *brickbreaker.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	lastTick  time.Time
	leftHeld  time.Time
	rightHeld time.Time

	runStart   time.Time
	scoreSaved bool
	quitting   bool
	backToMenu bool
	standalone bool // back quits the program instead of returning to a menu
}

// NewGameModel creates a model for game. A game without a session is reset
// from cfg when the model starts.
func NewGameModel(game *brickbreaker.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if game.Session() == nil {
		game.Reset(cfg)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		runStart:   time.Now(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	switch action {
	case core.ActionLeft:
		m.leftHeld = now.Add(moveHold)
		m.rightHeld = time.Time{}
	case core.ActionRight:
		m.rightHeld = now.Add(moveHold)
		m.leftHeld = time.Time{}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse aims the paddle at the pointer column and launches on click.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if w := m.screen.Width(); w > 0 {
		m.inputFrame.SetPointer((float64(msg.X) + 0.5) / float64(w))
		m.leftHeld = time.Time{}
		m.rightHeld = time.Time{}
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if now.Before(m.leftHeld) {
		m.inputFrame.Set(core.ActionLeft)
	}
	if now.Before(m.rightHeld) {
		m.inputFrame.Set(core.ActionRight)
	}

	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State

	events := m.game.Events()
	if len(events) > 0 && m.opts.Sink != nil {
		m.opts.Sink.Handle(events)
	}

	switch {
	case brickbreaker.HasEvent(events, brickbreaker.EventRestart):
		m.runStart = now
		m.scoreSaved = false
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordRun(now)
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished game. Storage is best effort.
func (m GameModel) recordRun(now time.Time) {
	if m.opts.Store == nil {
		return
	}

	s := m.game.Session()
	run := storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Level:    s.Level(),
		Cycle:    s.Cycle(),
		Won:      s.Won(),
		Duration: now.Sub(m.runStart),
	}
	if err := m.opts.Store.RecordFinished(run); err != nil {
		m.opts.logger().Warn("could not record run", "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".brickbreaker", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the terminal until the player quits or goes back.
func Run(game *brickbreaker.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
