package brickbreaker

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

func runInputs(seed int64, frames int) (View, core.GameState) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})

	for i := 0; i < frames; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 10:
			in.Set(core.ActionLaunch)
		case i > 10 && i%40 < 15:
			in.Set(core.ActionRight)
		case i > 10 && i%40 < 30:
			in.Set(core.ActionLeft)
		case i%40 == 35:
			in.SetPointer(0.5)
		}
		g.Step(in, 16*time.Millisecond)
		if g.State().GameOver {
			break
		}
	}
	return g.View(), g.State()
}

func TestGameDeterminism(t *testing.T) {
	v1, s1 := runInputs(12345, 600)
	v2, s2 := runInputs(12345, 600)

	if v1.Hash() != v2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", v1.Hash(), v2.Hash())
	}
	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
}

func TestGameStepMapsActions(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)
	g.Step(in, 16*time.Millisecond)
	if g.Session().AwaitingLaunch() || countKind(g.Events(), EventBallLaunch) != 1 {
		t.Fatal("launch action should release the ball")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	if res := g.Step(in, 16*time.Millisecond); !res.State.Paused {
		t.Fatal("pause action should pause")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in, 16*time.Millisecond)
	if res.State.Paused || !g.Session().AwaitingLaunch() {
		t.Error("restart should start a fresh, running session")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Level: 1/15", "♥♥♥", "Press SPACE to launch"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, PaddleChar) || !strings.ContainsRune(out, BallChar) {
		t.Error("render should show the paddle and ball")
	}
	if !strings.ContainsRune(out, BrickGlyphs[0]) {
		t.Error("render should show bricks")
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("tiny screens should get a warning")
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Session().TogglePause()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Session().TogglePause()
	g.Session().endGame(true)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Error("win overlay missing")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"brickbreaker", "brickbreaker_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestHasEvent(t *testing.T) {
	events := []Event{{Kind: EventWallBounce}, {Kind: EventRestart}}
	if !HasEvent(events, EventRestart) {
		t.Error("restart should be found")
	}
	if HasEvent(events, EventGameOver) || HasEvent(nil, EventRestart) {
		t.Error("missing kinds should not be found")
	}
}
