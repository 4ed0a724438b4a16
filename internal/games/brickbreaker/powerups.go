package brickbreaker

import (
	"image/color"
	"math"
	"slices"
)

// PowerupKind enumerates the pickups.
type PowerupKind int

const (
	PowerupMulti PowerupKind = iota
	PowerupExpand
	PowerupSlow
	PowerupLife
	PowerupFull
	PowerupDouble
	powerupKindCount
)

type powerupInfo struct {
	id    string
	icon  string
	color color.RGBA
}

var powerupTable = [powerupKindCount]powerupInfo{
	PowerupMulti:  {"multi", "⚪", color.RGBA{0x4a, 0xde, 0x80, 0xff}},
	PowerupExpand: {"expand", "⇔", color.RGBA{0xfb, 0xbf, 0x24, 0xff}},
	PowerupSlow:   {"slow", "⏱", color.RGBA{0x8b, 0x5c, 0xf6, 0xff}},
	PowerupLife:   {"life", "♥", color.RGBA{0xf4, 0x3f, 0x5e, 0xff}},
	PowerupFull:   {"full", "━", color.RGBA{0x06, 0xb6, 0xd4, 0xff}},
	PowerupDouble: {"2x", "2×", color.RGBA{0xfb, 0x92, 0x3c, 0xff}},
}

// String returns the kind's identifier ("multi", "2x", ...).
func (k PowerupKind) String() string {
	if k < 0 || k >= powerupKindCount {
		return "unknown"
	}
	return powerupTable[k].id
}

// Icon returns the glyph shown on the pickup.
func (k PowerupKind) Icon() string {
	if k < 0 || k >= powerupKindCount {
		return "?"
	}
	return powerupTable[k].icon
}

// Color returns the pickup's display color.
func (k PowerupKind) Color() color.RGBA {
	if k < 0 || k >= powerupKindCount {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return powerupTable[k].color
}

// PowerupState holds the timed effects that outlive the pickup itself.
type PowerupState struct {
	FullTimer       float64
	Multiplier      float64
	MultiplierTimer float64
}

func newPowerupState() PowerupState {
	return PowerupState{Multiplier: 1}
}

// tick counts down the timed effects and reverts them when they run out.
func (ps *PowerupState) tick(dt float64, paddle *Paddle) {
	if ps.FullTimer > 0 {
		ps.FullTimer -= dt
		if ps.FullTimer <= 0 {
			ps.FullTimer = 0
			paddle.SetWidth(paddle.BaseW)
		}
	}
	if ps.MultiplierTimer > 0 {
		ps.MultiplierTimer -= dt
		if ps.MultiplierTimer <= 0 {
			ps.MultiplierTimer = 0
			ps.Multiplier = 1
		}
	}
}

// maybeSpawnPowerup rolls the drop chance for a destroyed brick.
func (s *Session) maybeSpawnPowerup(x, y float64) {
	pc := s.cfg.Powerups
	if s.rng.Float64() >= pc.Chance {
		return
	}
	kind := PowerupKind(s.rng.Intn(int(powerupKindCount)))
	s.world.Powerups = append(s.world.Powerups, Powerup{
		X:    x,
		Y:    y,
		VX:   uniform(s.rng, -pc.Drift, pc.Drift),
		VY:   pc.FallSpeed,
		W:    pc.Size,
		H:    pc.Size,
		Kind: kind,
		Life: pc.Lifetime,
	})
}

// updatePowerups moves pickups, expires them and applies the ones the paddle
// catches.
func (s *Session) updatePowerups(dt float64) {
	field := s.field()
	paddle := s.paddle.Rect()
	// Effects may append balls but never pickups, so ranging by index is safe.
	for i := range s.world.Powerups {
		p := &s.world.Powerups[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt

		r := p.Rect()
		if p.Life <= 0 || p.Y > field.H+field.FloorMargin || r.Right() < 0 || r.X > field.W {
			p.gone = true
			continue
		}
		if r.Overlaps(paddle) {
			p.gone = true
			s.applyPowerup(p.Kind)
			s.burst(p.X, p.Y, p.Kind.Color(), s.cfg.Gameplay.CatchParticles)
			s.emit(Event{Kind: EventPowerupCaught, Powerup: p.Kind, X: p.X, Y: p.Y})
		}
	}
}

// resizePaddle changes the paddle width mid-tick, keeping it inside the
// playfield and the sticky balls on its new center.
func (s *Session) resizePaddle(w float64) {
	s.paddle.SetWidth(w)
	s.paddle.clampX(s.cfg.Playfield.Width)
	for i := range s.world.Balls {
		if b := &s.world.Balls[i]; b.Sticky {
			AttachToPaddle(b, &s.paddle)
		}
	}
}

// applyPowerup applies one effect. Multi clones the first ball still in
// play and does nothing when every ball has been lost this tick.
func (s *Session) applyPowerup(kind PowerupKind) {
	pc := s.cfg.Powerups
	switch kind {
	case PowerupMulti:
		i := slices.IndexFunc(s.world.Balls, func(b Ball) bool { return !b.lost })
		if i < 0 {
			return
		}
		base := s.world.Balls[i]
		for i := 0; i < pc.MultiBalls; i++ {
			dx := uniform(s.rng, -1, 1)
			dy := -math.Abs(uniform(s.rng, 0.7, 1))
			n := math.Hypot(dx, dy)
			s.world.Balls = append(s.world.Balls, Ball{
				X:     base.X,
				Y:     base.Y,
				R:     base.R,
				VX:    dx / n * base.Speed,
				VY:    dy / n * base.Speed,
				Speed: base.Speed,
			})
		}
	case PowerupExpand:
		s.resizePaddle(s.paddle.W + pc.ExpandAmount)
	case PowerupSlow:
		for i := range s.world.Balls {
			b := &s.world.Balls[i]
			b.SlowTimer = math.Max(b.SlowTimer, pc.SlowDuration)
		}
	case PowerupLife:
		s.lives = min(s.cfg.Gameplay.MaxLives, s.lives+1)
	case PowerupFull:
		s.resizePaddle(s.paddle.MaxW)
		s.powerups.FullTimer = pc.FullDuration
	case PowerupDouble:
		s.powerups.Multiplier = pc.DoubleMultiplier
		s.powerups.MultiplierTimer = pc.DoubleDuration
	}
}
