package entity

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs/component"
	"github.com/milk9111/boxbounce/prefabs"
)

// Rand is the uniform integer source bodies are drawn from.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG source. A zero seed is replaced with the wall clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntRange draws uniformly from the inclusive range [lo, hi].
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// SpawnBodies creates spec.Bodies.Count bodies with random position, velocity
// and color. The drawn position is used as the body center.
func SpawnBodies(spec *prefabs.WorldSpec, r Rand) []component.Body {
	if spec == nil || r == nil {
		return nil
	}
	bs := spec.Bodies
	bodies := make([]component.Body, 0, bs.Count)
	for i := 0; i < bs.Count; i++ {
		fill := color.RGBA{
			R: uint8(IntRange(r, bs.Color.Min, bs.Color.Max)),
			G: uint8(IntRange(r, bs.Color.Min, bs.Color.Max)),
			B: uint8(IntRange(r, bs.Color.Min, bs.Color.Max)),
			A: 255,
		}
		pos := cp.Vector{
			X: float64(IntRange(r, 0, int(spec.Width-bs.Width))),
			Y: float64(IntRange(r, 0, int(spec.Height-bs.Height))),
		}
		vel := cp.Vector{
			X: float64(IntRange(r, bs.VelocityX.Min, bs.VelocityX.Max)),
			Y: float64(IntRange(r, bs.VelocityY.Min, bs.VelocityY.Max)),
		}
		bodies = append(bodies, NewBody(bs.Width, bs.Height, bs.Mass, pos, vel, fill))
	}
	return bodies
}

// NewBody builds a body centered at pos.
func NewBody(width, height, mass float64, pos, vel cp.Vector, fill color.RGBA) component.Body {
	return component.Body{
		Size: cp.Vector{X: width, Y: height},
		Pos:  pos,
		Vel:  vel,
		Mass: mass,
		Fill: fill,
	}
}
