// Package ebitenaudio plays collision blips through ebiten's audio context.
package ebitenaudio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/boxbounce/common"
	"github.com/milk9111/boxbounce/sound"
)

const sampleRate = 44100

// Player keeps one pre-rendered blip and rewinds it on demand.
type Player struct {
	player *audio.Player
	volume float64
}

// New renders the blip and binds it to the process-wide audio context.
func New(frequency, volume float64) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	tone := sound.Tone{
		SampleRate: ctx.SampleRate(),
		Frequency:  frequency,
		Duration:   60 * time.Millisecond,
		Volume:     1,
	}
	return &Player{
		player: ctx.NewPlayerFromBytes(tone.PCM16()),
		volume: volume,
	}
}

func (p *Player) Blip(strength float64) {
	if p == nil || p.player == nil {
		return
	}
	p.player.SetVolume(float64(common.Lerp(0.25, 1, float32(strength))) * p.volume)
	p.player.Rewind()
	p.player.Play()
}

func (p *Player) Close() error {
	if p == nil || p.player == nil {
		return nil
	}
	return p.player.Close()
}
