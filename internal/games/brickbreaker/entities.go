package brickbreaker

import (
	"image/color"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// InfiniteHP is the hit point sentinel carried by indestructible bricks.
const InfiniteHP = math.MaxInt32

// Paddle is the player-controlled bar at the bottom of the playfield.
type Paddle struct {
	X, Y   float64
	W, H   float64
	Speed  float64 // px/s when moved with the keyboard
	BaseW  float64 // width restored when the full-width effect ends
	MinW   float64
	MaxW   float64
	Margin float64 // minimum gap to either side edge
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// SetWidth changes the width, keeping it within [MinW, MaxW].
func (p *Paddle) SetWidth(w float64) {
	p.W = core.ClampF(w, p.MinW, p.MaxW)
}

// clampX keeps the paddle inside the playfield edges.
func (p *Paddle) clampX(fieldW float64) {
	p.X = core.ClampF(p.X, p.Margin, fieldW-p.W-p.Margin)
}

// Ball is a single ball. Speed is the stored magnitude that bounces re-aim;
// a slowed ball moves by a fraction of its velocity but keeps Speed.
type Ball struct {
	X, Y      float64
	R         float64
	VX, VY    float64
	Speed     float64
	Sticky    bool
	SlowTimer float64

	lost bool
}

// Brick is one block in the level grid.
type Brick struct {
	X, Y, W, H     float64
	HP, MaxHP      int
	Points         int
	Indestructible bool
	Destroyed      bool

	Moving    bool
	BaseX     float64
	Range     float64
	MoveSpeed float64
	Direction float64 // +1 or -1
}

// Rect returns the brick's bounding box at its current position.
func (b *Brick) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Live reports whether the brick still counts toward clearing the level.
func (b *Brick) Live() bool {
	return !b.Destroyed && !b.Indestructible
}

// HPRatio returns remaining over initial hit points in [0, 1].
func (b *Brick) HPRatio() float64 {
	if b.Indestructible || b.MaxHP <= 0 {
		return 1
	}
	return core.ClampF(float64(b.HP)/float64(b.MaxHP), 0, 1)
}

// Powerup is a falling pickup. X and Y are the center.
type Powerup struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Kind   PowerupKind
	Life   float64

	gone bool
}

// Rect returns the pickup's bounding box.
func (p *Powerup) Rect() core.RectF {
	return core.RectF{X: p.X - p.W/2, Y: p.Y - p.H/2, W: p.W, H: p.H}
}

// Particle is a short-lived decorative dot.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   color.RGBA
}
