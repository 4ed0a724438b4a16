package brickbreaker

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	particleLife     = 0.5
	particleMinSpeed = 100
	particleMaxSpeed = 200
	particleMinSize  = 3
	particleMaxSize  = 7
)

var indestructibleColor = color.RGBA{0x44, 0x44, 0x44, 0xff}

// BrickColor shades a brick by remaining hit points: full bricks are blue,
// worn bricks drift through purple toward red.
func BrickColor(hpRatio float64, indestructible bool) color.RGBA {
	if indestructible {
		return indestructibleColor
	}
	hue := 220 + (360-220)*(1-hpRatio)
	sat := 0.70 + 0.30*hpRatio
	light := 0.50 + 0.15*hpRatio
	r, g, b := colorful.Hsl(math.Mod(hue, 360), sat, light).RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// burst spawns count particles evenly spaced around (x, y).
func (s *Session) burst(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := uniform(s.rng, particleMinSpeed, particleMaxSpeed)
		s.world.Particles = append(s.world.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    particleLife,
			MaxLife: particleLife,
			Size:    uniform(s.rng, particleMinSize, particleMaxSize),
			Color:   c,
		})
	}
}

// updateParticles moves and ages particles. Dead ones are dropped by Compact.
func (s *Session) updateParticles(dt float64) {
	for i := range s.world.Particles {
		p := &s.world.Particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
	}
}
