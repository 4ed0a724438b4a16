package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// releaseFraction of each tone fades out to avoid a click at the cutoff.
const releaseFraction = 0.15

// tone streams one cue at a fixed gain.
type tone struct {
	cue     Cue
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	release int
}

func newTone(c Cue, rate beep.SampleRate) *tone {
	total := rate.N(c.Duration)
	return &tone{
		cue:     c,
		rate:    rate,
		total:   total,
		release: int(float64(total) * releaseFraction),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		gain := t.cue.Volume
		if remaining := t.total - t.pos; t.release > 0 && remaining < t.release {
			gain *= float64(remaining) / float64(t.release)
		}

		val := gain * waveAt(t.cue.Wave, t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.cue.Freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// waveAt samples a unit wave at phase in [0, 1).
func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
