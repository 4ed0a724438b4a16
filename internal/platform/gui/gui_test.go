package gui

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

func TestPointerFraction(t *testing.T) {
	tests := []struct {
		x, width int
		want     float64
	}{
		{0, 960, 0},
		{480, 960, 0.5},
		{960, 960, 1},
		{-40, 960, 0},
		{2000, 960, 1},
		{10, 0, 0.5},
	}
	for _, tt := range tests {
		if got := pointerFraction(tt.x, tt.width); got != tt.want {
			t.Errorf("pointerFraction(%d, %d) = %v, want %v", tt.x, tt.width, got, tt.want)
		}
	}
}

func TestShakeOffset(t *testing.T) {
	if dx, dy := shakeOffset(0, 12); dx != 0 || dy != 0 {
		t.Errorf("no shake should not move the playfield, got (%v, %v)", dx, dy)
	}
	for frame := range 30 {
		dx, dy := shakeOffset(0.3, frame)
		if dx > 0.3*shakePixels || dx < -0.3*shakePixels || dy > 0.3*shakePixels || dy < -0.3*shakePixels {
			t.Fatalf("frame %d offset (%v, %v) exceeds the shake bound", frame, dx, dy)
		}
	}
}

func TestFade(t *testing.T) {
	red := color.RGBA{0xff, 0x00, 0x00, 0xff}

	if got := fade(red, 1); got != red {
		t.Errorf("full life should keep the color, got %v", got)
	}
	if got := fade(red, 0); got != backgroundColor {
		t.Errorf("no life should be the background, got %v", got)
	}
	mid := fade(red, 0.5)
	if mid.R <= backgroundColor.R || mid.R >= red.R {
		t.Errorf("half life should sit between, got %v", mid)
	}
	if got := fade(color.RGBA{}, 1); got != backgroundColor {
		t.Errorf("transparent colors should vanish, got %v", got)
	}
}

func TestOverlayText(t *testing.T) {
	tests := []struct {
		name  string
		view  brickbreaker.View
		title string
		hint  string
	}{
		{"playing", brickbreaker.View{}, "", ""},
		{"serve", brickbreaker.View{AwaitingLaunch: true}, "", "launch"},
		{"paused", brickbreaker.View{Paused: true, AwaitingLaunch: true}, "PAUSED", "resume"},
		{"lost", brickbreaker.View{GameOver: true, Score: 120}, "GAME OVER", "120"},
		{"won", brickbreaker.View{GameOver: true, Won: true, Score: 9000}, "YOU WIN!", "9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, hint := overlayText(&tt.view)
			if title != tt.title {
				t.Errorf("title = %q, want %q", title, tt.title)
			}
			if !strings.Contains(hint, tt.hint) {
				t.Errorf("hint %q should contain %q", hint, tt.hint)
			}
		})
	}
}

func TestHUDLabels(t *testing.T) {
	v := brickbreaker.View{Level: 2, TotalLevels: brickbreaker.TotalLevels}
	if got := levelLabel(&v); got != "Level 3/15" {
		t.Errorf("levelLabel = %q", got)
	}
	v.Endless, v.Cycle = true, 2
	if got := levelLabel(&v); got != "Level 3/15  +2" {
		t.Errorf("endless levelLabel = %q", got)
	}

	if got := comboLabel(&brickbreaker.View{Combo: 1, Multiplier: 1}); got != "" {
		t.Errorf("no combo should have no label, got %q", got)
	}
	if got := comboLabel(&brickbreaker.View{Combo: 4, Multiplier: 2}); got != "COMBO x4  2x SCORE" {
		t.Errorf("comboLabel = %q", got)
	}
}

func TestHUDFont(t *testing.T) {
	f, err := newHUDFont(hudFontSize)
	if err != nil {
		t.Fatalf("newHUDFont() failed: %v", err)
	}
	if f.body == nil || f.title == nil {
		t.Fatal("expected both faces")
	}
}

func TestNewWindowNeedsSession(t *testing.T) {
	if _, err := NewWindow(brickbreaker.New(), Options{}); err == nil {
		t.Error("a game without a session should be rejected")
	}
}

func TestTrackRunRestartsClock(t *testing.T) {
	g := brickbreaker.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
	w, err := NewWindow(g, Options{})
	if err != nil {
		t.Fatalf("NewWindow() failed: %v", err)
	}
	start := w.runStart

	w.trackRun(start.Add(time.Second), nil)
	if !w.runStart.Equal(start) || w.scoreSaved {
		t.Fatal("a running game should keep its clock")
	}

	midGame := start.Add(time.Minute)
	w.trackRun(midGame, []brickbreaker.Event{{Kind: brickbreaker.EventRestart}})
	if !w.runStart.Equal(midGame) {
		t.Errorf("runStart = %v, expected %v after a mid-game restart", w.runStart, midGame)
	}

	w.state.GameOver = true
	w.trackRun(midGame.Add(time.Minute), nil)
	if !w.scoreSaved {
		t.Error("a finished game should be recorded once")
	}

	again := midGame.Add(2 * time.Minute)
	w.trackRun(again, []brickbreaker.Event{{Kind: brickbreaker.EventRestart}})
	if !w.runStart.Equal(again) || w.scoreSaved {
		t.Error("restart after game over should start a new run")
	}
}
