package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/boxbounce/ecs"
)

// DebugOverlay prints frame counters in the top-left corner.
type DebugOverlay struct {
	Enabled bool
}

func NewDebugOverlay(enabled bool) *DebugOverlay {
	return &DebugOverlay{Enabled: enabled}
}

func (d *DebugOverlay) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || !d.Enabled || w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, DebugText(w, ebiten.ActualFPS()), 10, 10)
}

// DebugText formats the HUD lines for w.
func DebugText(w *ecs.World, fps float64) string {
	stats := w.Stats()
	state := "running"
	if w.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("FPS: %.2f  Frame: %d  [%s]\nBodies: %d  Gravity: %.2f  dt: %.3f\nContacts: %d (total %d)  Bounds: %d (total %d)",
		fps, stats.Frame, state,
		len(w.Bodies()), w.Gravity(), w.TimeStep(),
		stats.Contacts, stats.TotalContacts, stats.BoundaryHits, stats.TotalBoundaries)
}
