package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                   { return g.id }
func (g *stubGame) Title() string                { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(dst *core.Screen)      {}
func (g *stubGame) State() core.GameState        { return g.state }

func (g *stubGame) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if in.Has(core.ActionLaunch) {
		g.state.Score++
	}
	return core.StepResult{State: g.state}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || !Exists("aa_stub") {
		t.Fatal("registered games should exist")
	}
	if Exists("missing") {
		t.Error("unregistered id should not exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "ZZ_STUB" {
		t.Errorf("Title() = %q", g.Title())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)
	if res := g.Step(in, 16*time.Millisecond); res.State.Score != 1 {
		t.Errorf("Step() score = %d, expected 1", res.State.Score)
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ai, zi := -1, -1
	for i, id := range ids {
		switch id {
		case "aa_stub":
			ai = i
		case "zz_stub":
			zi = i
		}
	}
	if ai < 0 || zi < 0 || ai > zi {
		t.Errorf("List() not sorted or incomplete: %v", ids)
	}
	if list[ai].Title != "AA_STUB" {
		t.Errorf("List() title = %q", list[ai].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
