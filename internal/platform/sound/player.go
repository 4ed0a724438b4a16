package sound

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	maxVoices = 8 // simultaneous tones, extra cues are dropped
)

// Player turns game events into tones. The zero value and a Player whose
// Init failed are silent, so callers never need to check.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
	logger      *log.Logger
}

// NewPlayer creates a player. Call Init to open the audio device.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.initialized = true
	p.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// SetVolume sets the master volume in [0, 1]. Zero mutes.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.volume == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if v <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(math.Min(v, 1))
}

// ToggleMute flips muting and reports the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Handle plays the cue of every event that has one.
func (p *Player) Handle(events []brickbreaker.Event) {
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			p.Play(c)
		}
	}
}

// Play queues one cue on the mixer.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(newTone(c, sampleRate))
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
