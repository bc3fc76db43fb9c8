// Package beepaudio plays collision blips through the beep speaker.
package beepaudio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/boxbounce/common"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sine blips on the default speaker.
type Player struct {
	mu        sync.Mutex
	frequency float64
	volume    float64
	closed    bool
}

// New initializes the speaker. It fails when no audio device is available.
func New(frequency, volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{frequency: frequency, volume: volume}, nil
}

func (p *Player) Blip(strength float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	sine, err := generators.SineTone(sampleRate, p.frequency)
	if err != nil {
		return
	}
	gain := float64(common.Lerp(0.25, 1, float32(strength))) * p.volume
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), &effects.Gain{
		Streamer: sine,
		Gain:     gain - 1,
	}))
}

func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Close()
	return nil
}
