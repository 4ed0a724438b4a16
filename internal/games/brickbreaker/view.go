package brickbreaker

import (
	"image/color"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// View is a read-only snapshot of a session for the presentation layer.
// It shares no memory with the session.
type View struct {
	Width, Height float64

	Paddle    core.RectF
	Balls     []BallView
	Bricks    []BrickView
	Powerups  []PowerupView
	Particles []ParticleView

	Score          int
	Level          int
	TotalLevels    int
	Cycle          int
	Lives          int
	Combo          int
	Multiplier     float64
	Paused         bool
	GameOver       bool
	Won            bool
	AwaitingLaunch bool
	Endless        bool
	Shake          float64 // screen shake strength, decays to 0
	RandState      uint64  // position in the random stream
}

// BallView is a drawable ball.
type BallView struct {
	X, Y, R float64
	Slowed  bool
}

// BrickView is a drawable, non-destroyed brick.
type BrickView struct {
	Rect           core.RectF
	HPRatio        float64
	Indestructible bool
	Moving         bool
	Color          color.RGBA
}

// PowerupView is a drawable falling pickup.
type PowerupView struct {
	Rect  core.RectF
	Kind  PowerupKind
	Icon  string
	Color color.RGBA
}

// ParticleView is a drawable particle. Life is the remaining fraction.
type ParticleView struct {
	X, Y  float64
	Size  float64
	Life  float64
	Color color.RGBA
}

// View snapshots the session.
func (s *Session) View() View {
	v := View{
		Width:          s.cfg.Playfield.Width,
		Height:         s.cfg.Playfield.Height,
		Paddle:         s.paddle.Rect(),
		Score:          s.score,
		Level:          s.level,
		TotalLevels:    TotalLevels,
		Cycle:          s.cycle,
		Lives:          s.lives,
		Combo:          s.combo,
		Multiplier:     s.powerups.Multiplier,
		Paused:         s.paused,
		GameOver:       s.gameOver,
		Won:            s.won,
		AwaitingLaunch: s.awaitingLaunch,
		Endless:        s.mode == ModeEndless,
		Shake:          s.shake,
		RandState:      s.rng.State(),
	}

	v.Balls = make([]BallView, 0, len(s.world.Balls))
	for _, b := range s.world.Balls {
		v.Balls = append(v.Balls, BallView{X: b.X, Y: b.Y, R: b.R, Slowed: b.SlowTimer > 0})
	}

	v.Bricks = make([]BrickView, 0, len(s.world.Bricks))
	for i := range s.world.Bricks {
		b := &s.world.Bricks[i]
		if b.Destroyed {
			continue
		}
		ratio := b.HPRatio()
		v.Bricks = append(v.Bricks, BrickView{
			Rect:           b.Rect(),
			HPRatio:        ratio,
			Indestructible: b.Indestructible,
			Moving:         b.Moving,
			Color:          BrickColor(ratio, b.Indestructible),
		})
	}

	v.Powerups = make([]PowerupView, 0, len(s.world.Powerups))
	for i := range s.world.Powerups {
		p := &s.world.Powerups[i]
		v.Powerups = append(v.Powerups, PowerupView{
			Rect:  p.Rect(),
			Kind:  p.Kind,
			Icon:  p.Kind.Icon(),
			Color: p.Kind.Color(),
		})
	}

	v.Particles = make([]ParticleView, 0, len(s.world.Particles))
	for _, p := range s.world.Particles {
		v.Particles = append(v.Particles, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Size:  p.Size,
			Life:  core.ClampF(p.Life/p.MaxLife, 0, 1),
			Color: p.Color,
		})
	}
	return v
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (v *View) Hash() uint64 {
	h := uint64(17)
	mix := func(x uint64) { h = h*31 + x }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixF(v.Paddle.X)
	mixF(v.Paddle.W)
	mix(uint64(v.Score)) //#nosec G115 -- hash computation
	mix(uint64(v.Level)) //#nosec G115 -- hash computation
	mix(uint64(v.Cycle)) //#nosec G115 -- hash computation
	mix(uint64(v.Lives)) //#nosec G115 -- hash computation
	mix(uint64(v.Combo)) //#nosec G115 -- hash computation
	mixF(v.Multiplier)
	mixB(v.Paused)
	mixB(v.GameOver)
	mixB(v.Won)
	mixB(v.AwaitingLaunch)
	mix(v.RandState)

	for _, b := range v.Balls {
		mixF(b.X)
		mixF(b.Y)
	}
	for _, b := range v.Bricks {
		mixF(b.Rect.X)
		mixF(b.HPRatio)
	}
	for _, p := range v.Powerups {
		mix(uint64(p.Kind)) //#nosec G115 -- hash computation
		mixF(p.Rect.X)
		mixF(p.Rect.Y)
	}
	mix(uint64(len(v.Particles)))
	return h
}
