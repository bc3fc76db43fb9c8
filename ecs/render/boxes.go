package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boxbounce/ecs"
	"golang.org/x/image/colornames"
)

// BoxRenderer clears the screen and draws every body as an outlined box.
type BoxRenderer struct {
	Background       color.Color
	Outline          color.Color
	OutlineThickness float32
}

func NewBoxRenderer() *BoxRenderer {
	return &BoxRenderer{
		Background:       colornames.Black,
		Outline:          colornames.Black,
		OutlineThickness: 1,
	}
}

func (r *BoxRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Background != nil {
		screen.Fill(r.Background)
	}

	bodies := w.Bodies()
	for i := range bodies {
		bb := bodies[i].BB()
		x, y := float32(bb.L), float32(bb.B)
		wd, ht := float32(bb.R-bb.L), float32(bb.T-bb.B)

		vector.FillRect(screen, x, y, wd, ht, bodies[i].Fill, false)
		if r.OutlineThickness <= 0 || r.Outline == nil {
			continue
		}
		// Outline sits outside the fill.
		t := r.OutlineThickness
		vector.StrokeRect(screen, x-t/2, y-t/2, wd+t, ht+t, t, r.Outline, false)
	}
}
