// Package gui runs Brick Breaker in a desktop window using Ebiten.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// maxFrame caps the wall time fed to one Update after a stall.
const maxFrame = 250 * time.Millisecond

// EventSink receives the events raised by each simulation tick.
type EventSink interface {
	Handle(events []brickbreaker.Event)
}

// Muter is implemented by sinks that can be silenced with the M key.
type Muter interface {
	ToggleMute() bool
}

// Options holds the optional collaborators of a Window.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sink   EventSink
	Scale  float64 // window size relative to the playfield, default 1
}

// Window is an ebiten.Game driving one Brick Breaker game.
type Window struct {
	game   *brickbreaker.Game
	opts   Options
	logger *log.Logger
	hud    *hudFont

	width, height int

	lastUpdate time.Time
	lastCursor [2]int
	state      core.GameState
	frame      int

	runStart   time.Time
	scoreSaved bool
	quitting   bool
}

// NewWindow wraps game, which must already have a session.
func NewWindow(game *brickbreaker.Game, opts Options) (*Window, error) {
	if game.Session() == nil {
		return nil, fmt.Errorf("gui: game has no session")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hud, err := newHUDFont(hudFontSize)
	if err != nil {
		return nil, err
	}

	v := game.View()
	return &Window{
		game:     game,
		opts:     opts,
		logger:   logger,
		hud:      hud,
		width:    int(v.Width),
		height:   int(v.Height) + hudHeight,
		state:    game.State(),
		runStart: time.Now(),
	}, nil
}

// Update reads input and advances the simulation by the wall time since the
// previous call.
func (w *Window) Update() error {
	if w.quitting {
		return ebiten.Termination
	}

	now := time.Now()
	var elapsed time.Duration
	if !w.lastUpdate.IsZero() {
		elapsed = min(now.Sub(w.lastUpdate), maxFrame)
	}
	w.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if w.state.Paused || w.state.GameOver {
			w.quitting = true
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if m, ok := w.opts.Sink.(Muter); ok {
			w.logger.Debug("sound toggled", "muted", m.ToggleMute())
		}
	}

	w.state = w.game.Step(w.readInput(), elapsed).State
	w.frame++

	events := w.game.Events()
	if len(events) > 0 && w.opts.Sink != nil {
		w.opts.Sink.Handle(events)
	}
	w.trackRun(now, events)
	return nil
}

// trackRun records a finished game once and starts timing a new run on
// every restart, including one in the middle of a game.
func (w *Window) trackRun(now time.Time, events []brickbreaker.Event) {
	switch {
	case brickbreaker.HasEvent(events, brickbreaker.EventRestart):
		w.runStart = now
		w.scoreSaved = false
	case w.state.GameOver && !w.scoreSaved:
		w.recordRun(now)
		w.scoreSaved = true
	}
}

func (w *Window) readInput() core.InputFrame {
	in := core.NewInputFrame()

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionLaunch)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionRestart)
	}

	// The mouse only steers once it moves, so keys keep working while it rests.
	x, y := ebiten.CursorPosition()
	if cur := [2]int{x, y}; cur != w.lastCursor {
		w.lastCursor = cur
		in.SetPointer(pointerFraction(x, w.width))
	}
	return in
}

// recordRun stores the finished game. Storage is best effort.
func (w *Window) recordRun(now time.Time) {
	if w.opts.Store == nil {
		return
	}

	s := w.game.Session()
	run := storage.RunRecord{
		GameID:   w.game.ID(),
		Score:    w.state.Score,
		Level:    s.Level(),
		Cycle:    s.Cycle(),
		Won:      s.Won(),
		Duration: now.Sub(w.runStart),
	}
	if err := w.opts.Store.RecordFinished(run); err != nil {
		w.logger.Warn("could not record run", "err", err)
	}
}

// Draw renders the current view.
func (w *Window) Draw(screen *ebiten.Image) {
	v := w.game.View()
	drawView(screen, &v, w.hud, w.frame)
}

// Layout keeps the logical size fixed to the playfield plus the HUD strip.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// State returns the game state after the last Update.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens a window and blocks until it is closed.
func Run(game *brickbreaker.Game, opts Options) error {
	w, err := NewWindow(game, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.width)*scale), int(float64(w.height)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Info("window opened", "game", game.ID(), "width", w.width, "height", w.height)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// pointerFraction converts a cursor column to a paddle target in [0, 1].
func pointerFraction(x, width int) float64 {
	if width <= 0 {
		return 0.5
	}
	return core.ClampF(float64(x)/float64(width), 0, 1)
}
