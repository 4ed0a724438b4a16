package brickbreaker

import "slices"

// World holds the entity collections of the active level.
// Balls, powerups and particles are flagged during a pass and removed by
// Compact afterwards, so a pass never shifts indexes under itself.
type World struct {
	Balls     []Ball
	Bricks    []Brick
	Powerups  []Powerup
	Particles []Particle
}

// LoadBricks makes bricks the live level. Balls and falling pickups belong
// to the old level and are dropped; particles keep fading out.
func (w *World) LoadBricks(bricks []Brick) {
	w.Bricks = bricks
	w.Balls = w.Balls[:0]
	w.Powerups = w.Powerups[:0]
}

// LiveBricks counts bricks that still have to be destroyed.
func (w *World) LiveBricks() int {
	n := 0
	for i := range w.Bricks {
		if w.Bricks[i].Live() {
			n++
		}
	}
	return n
}

// Compact drops every entity flagged for removal.
func (w *World) Compact() {
	w.Balls = slices.DeleteFunc(w.Balls, func(b Ball) bool { return b.lost })
	w.Powerups = slices.DeleteFunc(w.Powerups, func(p Powerup) bool { return p.gone })
	w.Particles = slices.DeleteFunc(w.Particles, func(p Particle) bool { return p.Life <= 0 })
}
