// Package render draws the world with ebiten.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxbounce/ecs"
)

// Renderer draws world state each frame.
type Renderer interface {
	Draw(w *ecs.World, screen *ebiten.Image)
}

// Pipeline calls renderers in order.
type Pipeline []Renderer

func (p Pipeline) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, r := range p {
		if r != nil {
			r.Draw(w, screen)
		}
	}
}
