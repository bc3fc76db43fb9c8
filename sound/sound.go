// Package sound produces short collision blips for the frontends.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Player plays collision feedback. Implementations must be safe to call
// every frame.
type Player interface {
	// Blip plays a short tone. strength is in [0, 1].
	Blip(strength float64)
	Close() error
}

// Nop is a Player that does nothing. It is used when audio is muted or
// unavailable.
type Nop struct{}

func (Nop) Blip(float64)  {}
func (Nop) Close() error { return nil }

// Tone describes a synthesized sine blip.
type Tone struct {
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Volume     float64
}

// Samples returns the number of frames the tone lasts.
func (t Tone) Samples() int {
	return int(float64(t.SampleRate) * t.Duration.Seconds())
}

// PCM16 renders the tone as interleaved 16-bit little-endian stereo PCM with
// a linear fade-out so the blip does not click.
func (t Tone) PCM16() []byte {
	n := t.Samples()
	if n <= 0 || t.SampleRate <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*t.Frequency*float64(i)/float64(t.SampleRate)) * vol * env
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
