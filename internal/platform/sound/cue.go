// Package sound plays short synthesized cues for game events using beep.
package sound

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// Cue is a single tone.
type Cue struct {
	Freq     float64 // Hz
	Duration time.Duration
	Wave     Wave
	Volume   float64 // 0..1
}

// destroyedStep raises the brick-destroyed pitch per combo step.
const destroyedStep = 50

// CueFor maps an event to its tone. Events without a sound return false.
func CueFor(e brickbreaker.Event) (Cue, bool) {
	switch e.Kind {
	case brickbreaker.EventBallLaunch:
		return Cue{880, 50 * time.Millisecond, WaveSine, 0.06}, true
	case brickbreaker.EventWallBounce:
		return Cue{1100, 20 * time.Millisecond, WaveSine, 0.03}, true
	case brickbreaker.EventPaddleBounce:
		return Cue{800, 30 * time.Millisecond, WaveSquare, 0.05}, true
	case brickbreaker.EventBrickDestroyed:
		return Cue{1300 + float64(e.Combo*destroyedStep), 40 * time.Millisecond, WaveSawtooth, 0.06}, true
	case brickbreaker.EventBrickHit:
		return Cue{950, 20 * time.Millisecond, WaveSquare, 0.04}, true
	case brickbreaker.EventPowerupCaught:
		return Cue{1400, 80 * time.Millisecond, WaveTriangle, 0.08}, true
	case brickbreaker.EventLifeLost:
		return Cue{400, 100 * time.Millisecond, WaveSine, 0.08}, true
	case brickbreaker.EventGameOver:
		// A win already sounded the level clear chime.
		if e.Won {
			return Cue{}, false
		}
		return Cue{200, 600 * time.Millisecond, WaveSine, 0.12}, true
	case brickbreaker.EventLevelClear:
		return Cue{1800, 200 * time.Millisecond, WaveTriangle, 0.1}, true
	case brickbreaker.EventRestart:
		return Cue{660, 80 * time.Millisecond, WaveSquare, 0.08}, true
	}
	return Cue{}, false
}
