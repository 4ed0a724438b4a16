package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Field is the playfield geometry used by collision resolution.
type Field struct {
	W, H        float64
	WallMargin  float64
	FloorMargin float64
	SlowFactor  float64
	MaxBounce   float64 // paddle deflection at the edge, in radians
}

// Contact lists what a ball touched during one step.
type Contact struct {
	Wall   bool // side wall or ceiling
	Paddle bool
	Brick  int // index into the brick slice, -1 if none
	Lost   bool
	BrickX float64
	BrickY float64
}

// CircleRect reports whether a circle touches a rectangle, using the point of
// the rectangle closest to the circle's center.
func CircleRect(cx, cy, r float64, rect core.RectF) bool {
	closestX := core.ClampF(cx, rect.X, rect.Right())
	closestY := core.ClampF(cy, rect.Y, rect.Bottom())
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= r*r
}

// AttachToPaddle places a sticky ball above the paddle center.
func AttachToPaddle(b *Ball, p *Paddle) {
	b.X = p.CenterX()
	b.Y = p.Y - b.R - 2
}

// StepBall advances one free ball by dt and resolves its collisions in order:
// side walls, ceiling, floor exit, paddle, bricks. At most one brick is hit.
// Brick hit points are decremented here; scoring is left to the caller.
func StepBall(b *Ball, dt float64, f Field, paddle *Paddle, bricks []Brick) Contact {
	c := Contact{Brick: -1}

	mult := 1.0
	if b.SlowTimer > 0 {
		mult = f.SlowFactor
		b.SlowTimer -= dt
	}
	prevY := b.Y
	b.X += b.VX * dt * mult
	b.Y += b.VY * dt * mult

	if b.X-b.R <= f.WallMargin {
		b.X = f.WallMargin + b.R
		b.VX = math.Abs(b.VX)
		c.Wall = true
	}
	if b.X+b.R >= f.W-f.WallMargin {
		b.X = f.W - f.WallMargin - b.R
		b.VX = -math.Abs(b.VX)
		c.Wall = true
	}
	if b.Y-b.R <= f.WallMargin {
		b.Y = f.WallMargin + b.R
		b.VY = math.Abs(b.VY)
		c.Wall = true
	}

	if b.Y-b.R > f.H+f.FloorMargin {
		b.lost = true
		c.Lost = true
		return c
	}

	if b.VY > 0 && CircleRect(b.X, b.Y, b.R, paddle.Rect()) {
		offset := (b.X - paddle.CenterX()) / (paddle.W / 2)
		angle := core.ClampF(offset, -0.95, 0.95) * f.MaxBounce
		b.VX = math.Sin(angle) * b.Speed
		b.VY = -math.Cos(angle) * b.Speed
		b.Y = paddle.Y - b.R - 2
		c.Paddle = true
	}

	for i := range bricks {
		br := &bricks[i]
		if !br.Live() {
			continue
		}
		rect := br.Rect()
		if !CircleRect(b.X, b.Y, b.R, rect) {
			continue
		}
		if prevY+b.R <= rect.Y || prevY-b.R >= rect.Bottom() {
			b.VY = -b.VY
		} else {
			b.VX = -b.VX
		}
		br.HP--
		c.Brick = i
		c.BrickX = rect.CenterX()
		c.BrickY = rect.CenterY()
		break
	}
	return c
}

// MoveBricks positions oscillating bricks for simulated time t, keeping them
// between the side walls.
func MoveBricks(bricks []Brick, t float64, f Field) {
	for i := range bricks {
		b := &bricks[i]
		if !b.Moving || b.Destroyed {
			continue
		}
		x := b.BaseX + math.Sin(b.Direction*t*b.MoveSpeed/30)*b.Range
		b.X = core.ClampF(x, f.WallMargin, f.W-f.WallMargin-b.W)
	}
}
