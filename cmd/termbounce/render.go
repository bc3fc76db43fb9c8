package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/boxbounce/ecs"
)

const bodyRune = '█'

// cellSpan maps a world-space span onto terminal cells. The result is
// clamped to [0, cells) and always covers at least one cell.
func cellSpan(lo, hi, worldSize float64, cells int) (int, int) {
	if cells <= 0 || worldSize <= 0 {
		return 0, 0
	}
	scale := float64(cells) / worldSize
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale)) - 1
	if b < a {
		b = a
	}
	a = max(a, 0)
	b = min(b, cells-1)
	return a, b
}

// drawWorld paints bodies into the top rows of the screen and a status line
// into the last row.
func drawWorld(screen tcell.Screen, w *ecs.World) {
	cols, rows := screen.Size()
	screen.Clear()
	if cols <= 0 || rows <= 1 {
		screen.Show()
		return
	}
	field := rows - 1
	width, height := w.Size()

	bodies := w.Bodies()
	for i := range bodies {
		bb := bodies[i].BB()
		x0, x1 := cellSpan(bb.L, bb.R, width, cols)
		y0, y1 := cellSpan(bb.B, bb.T, height, field)
		if bb.R < 0 || bb.L > width || bb.T < 0 || bb.B > height {
			continue
		}
		fill := bodies[i].Fill
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fill.R), int32(fill.G), int32(fill.B)))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				screen.SetContent(x, y, bodyRune, nil, style)
			}
		}
	}

	drawStatus(screen, cols, rows-1, statusLine(w))
	screen.Show()
}

func statusLine(w *ecs.World) string {
	stats := w.Stats()
	state := "running"
	if w.Paused() {
		state = "paused"
	}
	return fmt.Sprintf(" frame %d  bodies %d  contacts %d  [%s]  space pause  r reset  q quit",
		stats.Frame, len(w.Bodies()), stats.TotalContacts, state)
}

func drawStatus(screen tcell.Screen, cols, row int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	x := 0
	for _, r := range text {
		if x >= cols {
			break
		}
		screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		screen.SetContent(x, row, ' ', nil, style)
	}
}
