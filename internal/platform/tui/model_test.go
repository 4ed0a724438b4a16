package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

type recordingSink struct {
	events []brickbreaker.Event
}

func (r *recordingSink) Handle(events []brickbreaker.Event) {
	r.events = append(r.events, events...)
}

func (r *recordingSink) count(kind brickbreaker.EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7}
}

func newTestGameModel(t *testing.T, opts Options) GameModel {
	t.Helper()
	game, err := NewGame(Selection{Mode: brickbreaker.ModeCampaign, Level: -1}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return NewGameModel(game, testRuntime(), opts)
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelLaunchEmitsEvent(t *testing.T) {
	sink := &recordingSink{}
	m := newTestGameModel(t, Options{Sink: sink})
	start := time.Now()

	m = update(t, m, TickMsg(start))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(start.Add(16*time.Millisecond)))

	if m.game.Session().AwaitingLaunch() {
		t.Error("ball should be launched")
	}
	if sink.count(brickbreaker.EventBallLaunch) != 1 {
		t.Errorf("expected one launch event, got %d", sink.count(brickbreaker.EventBallLaunch))
	}
}

func TestGameModelHeldMovement(t *testing.T) {
	m := newTestGameModel(t, Options{})
	before := m.game.View().Paddle.X
	start := time.Now()

	m = update(t, m, TickMsg(start))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(time.Now().Add(16*time.Millisecond)))

	after := m.game.View().Paddle.X
	if after >= before {
		t.Errorf("paddle should move left: before %v, after %v", before, after)
	}

	// Once the hold expires the paddle stops.
	later := time.Now().Add(moveHold + time.Second)
	m = update(t, m, TickMsg(later))
	stopped := m.game.View().Paddle.X
	m = update(t, m, TickMsg(later.Add(16*time.Millisecond)))
	if got := m.game.View().Paddle.X; got != stopped {
		t.Errorf("paddle kept moving after hold expired: %v -> %v", stopped, got)
	}
}

func TestGameModelMouse(t *testing.T) {
	m := newTestGameModel(t, Options{})

	m = update(t, m, tea.MouseMsg{X: 0, Y: 10, Action: tea.MouseActionMotion})
	if !m.inputFrame.HasPointer {
		t.Fatal("mouse motion should set the pointer")
	}
	if want := 0.5 / 80; m.inputFrame.Pointer != want {
		t.Errorf("Pointer = %v, expected %v", m.inputFrame.Pointer, want)
	}
	if m.inputFrame.Has(core.ActionLaunch) {
		t.Error("motion should not launch")
	}

	m = update(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.inputFrame.Has(core.ActionLaunch) {
		t.Error("left click should launch")
	}
}

func TestGameModelPauseAndBack(t *testing.T) {
	m := newTestGameModel(t, Options{})
	start := time.Now()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(start))
	if !m.State().Paused {
		t.Fatal("p should pause")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(t, Options{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(GameModel).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelRecordRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGameModel(t, Options{Store: store})
	m.gameState = core.GameState{Score: 420, GameOver: true}
	m.recordRun(m.runStart.Add(90 * time.Second))

	scores, err := store.TopScores("brickbreaker", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 420 {
		t.Errorf("unexpected scores: %+v", scores)
	}

	runs, err := store.RecentRuns("brickbreaker", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Duration != 90*time.Second || runs[0].Won {
		t.Errorf("unexpected runs: %+v", runs)
	}
}

func TestGameModelRestartResetsRunClock(t *testing.T) {
	m := newTestGameModel(t, Options{})
	start := time.Now()

	m = update(t, m, TickMsg(start))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(start.Add(16*time.Millisecond)))
	if m.gameState.GameOver {
		t.Fatal("game should still be running")
	}

	restartAt := start.Add(2 * time.Minute)
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(restartAt))

	if !m.runStart.Equal(restartAt) {
		t.Errorf("runStart = %v, expected the restart time %v", m.runStart, restartAt)
	}
	if m.scoreSaved {
		t.Error("a restarted run has nothing saved yet")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGameModel(t, Options{})
	out := m.View()
	if !strings.Contains(out, "Score") {
		t.Error("view should include the HUD")
	}
	if !strings.Contains(out, "launch") {
		t.Error("view should prompt for launch")
	}
}
