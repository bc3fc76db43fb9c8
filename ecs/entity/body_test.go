package entity

import (
	"testing"

	"github.com/milk9111/boxbounce/common"
	"github.com/milk9111/boxbounce/prefabs"
)

// edgeRand always returns either the smallest or largest value IntN allows.
type edgeRand struct{ high bool }

func (r edgeRand) IntN(n int) int {
	if r.high {
		return n - 1
	}
	return 0
}

func testSpec() *prefabs.WorldSpec {
	return &prefabs.WorldSpec{
		Width:    common.BaseWidth,
		Height:   common.BaseHeight,
		Gravity:  common.Gravity,
		TimeStep: common.TimeStep,
		Bodies: prefabs.BodySpec{
			Count:     common.BodyCount,
			Width:     common.BodySize,
			Height:    common.BodySize,
			Mass:      1,
			VelocityX: prefabs.IntRange{Min: -10, Max: 10},
			VelocityY: prefabs.IntRange{Min: -2, Max: 2},
			Color:     prefabs.IntRange{Min: 0, Max: 255},
		},
	}
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name   string
		r      Rand
		lo, hi int
		want   int
	}{
		{name: "low", r: edgeRand{}, lo: -10, hi: 10, want: -10},
		{name: "high", r: edgeRand{high: true}, lo: -10, hi: 10, want: 10},
		{name: "single", r: edgeRand{high: true}, lo: 4, hi: 4, want: 4},
		{name: "inverted", r: edgeRand{high: true}, lo: 5, hi: 1, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntRange(tt.r, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSpawnBodiesExtremes(t *testing.T) {
	spec := testSpec()

	low := SpawnBodies(spec, edgeRand{})
	if len(low) != 8 {
		t.Fatalf("expected 8 bodies, got %d", len(low))
	}
	b := low[0]
	if b.Pos.X != 0 || b.Pos.Y != 0 || b.Vel.X != -10 || b.Vel.Y != -2 {
		t.Fatalf("unexpected low body %+v", b)
	}
	if b.Fill.R != 0 || b.Fill.G != 0 || b.Fill.B != 0 || b.Fill.A != 255 {
		t.Fatalf("unexpected low fill %v", b.Fill)
	}

	high := SpawnBodies(spec, edgeRand{high: true})
	b = high[7]
	if b.Pos.X != 770 || b.Pos.Y != 570 || b.Vel.X != 10 || b.Vel.Y != 2 {
		t.Fatalf("unexpected high body %+v", b)
	}
	if b.Fill.R != 255 || b.Fill.G != 255 || b.Fill.B != 255 {
		t.Fatalf("unexpected high fill %v", b.Fill)
	}
	if b.Size.X != 30 || b.Size.Y != 30 || b.Mass != 1 {
		t.Fatalf("unexpected shape %+v", b)
	}
}

func TestSpawnBodiesWithinRanges(t *testing.T) {
	spec := testSpec()
	spec.Bodies.Count = 200
	bodies := SpawnBodies(spec, NewRand(7))
	for i, b := range bodies {
		if b.Pos.X < 0 || b.Pos.X > 770 || b.Pos.Y < 0 || b.Pos.Y > 570 {
			t.Fatalf("body %d position out of range: %v", i, b.Pos)
		}
		if b.Vel.X < -10 || b.Vel.X > 10 || b.Vel.Y < -2 || b.Vel.Y > 2 {
			t.Fatalf("body %d velocity out of range: %v", i, b.Vel)
		}
		if b.Pos.X != float64(int(b.Pos.X)) || b.Vel.Y != float64(int(b.Vel.Y)) {
			t.Fatalf("body %d should use integer draws: %+v", i, b)
		}
	}
}

func TestSpawnBodiesDeterministic(t *testing.T) {
	spec := testSpec()
	a := SpawnBodies(spec, NewRand(42))
	b := SpawnBodies(spec, NewRand(42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("body %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnBodiesNil(t *testing.T) {
	if got := SpawnBodies(nil, edgeRand{}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := SpawnBodies(testSpec(), nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// A body can leave the world by at most one frame of motion plus a push.
const escapeMargin = 60

func TestBuildWorld(t *testing.T) {
	spec := testSpec()
	w := BuildWorld(spec)
	width, height := w.Size()
	if width != 800 || height != 600 {
		t.Fatalf("expected 800x600, got %vx%v", width, height)
	}
	if len(w.Systems()) != 3 {
		t.Fatalf("expected bounds, integrate and collision systems, got %d", len(w.Systems()))
	}

	bodies, err := Populate(spec, NewRand(1), "")
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	w.Reset(bodies)
	for range 300 {
		w.Update()
	}
	for i, b := range w.Bodies() {
		bb := b.BB()
		if bb.L < -escapeMargin || bb.R > width+escapeMargin || bb.B < -escapeMargin || bb.T > height+escapeMargin {
			t.Fatalf("body %d escaped the world: %v", i, b.Pos)
		}
	}
	if w.Stats().Frame != 300 {
		t.Fatalf("expected 300 frames, got %d", w.Stats().Frame)
	}
}
