package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs/component"
)

var testBounds = cp.BB{L: 0, B: 0, R: 800, T: 600}

func box(x, y, vx, vy float64) component.Body {
	return component.Body{
		Size: cp.Vector{X: 30, Y: 30},
		Pos:  cp.Vector{X: x, Y: y},
		Vel:  cp.Vector{X: vx, Y: vy},
		Mass: 1,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveBounds(t *testing.T) {
	cases := []struct {
		name    string
		body    component.Body
		wantPos cp.Vector
		wantVel cp.Vector
		wantHit Edge
	}{
		{"inside", box(400, 300, 3, -2), cp.Vector{X: 400, Y: 300}, cp.Vector{X: 3, Y: -2}, 0},
		{"bottom", box(400, 595, 0, 3), cp.Vector{X: 400, Y: 585}, cp.Vector{X: 0, Y: -3}, EdgeBottom},
		{"top", box(400, 5, 0, -3), cp.Vector{X: 400, Y: 15}, cp.Vector{X: 0, Y: 3}, EdgeTop},
		{"right", box(790, 300, 4, 0), cp.Vector{X: 785, Y: 300}, cp.Vector{X: -4, Y: 0}, EdgeRight},
		{"left", box(2, 300, -4, 0), cp.Vector{X: 15, Y: 300}, cp.Vector{X: 4, Y: 0}, EdgeLeft},
		{"corner_both_axes", box(799, 599, 2, 2), cp.Vector{X: 785, Y: 585}, cp.Vector{X: -2, Y: -2}, EdgeBottom | EdgeRight},
		{"flush_is_not_a_hit", box(785, 585, 1, 1), cp.Vector{X: 785, Y: 585}, cp.Vector{X: 1, Y: 1}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := c.body
			hit := ResolveBounds(&b, testBounds)
			if hit != c.wantHit {
				t.Fatalf("expected hit %b, got %b", c.wantHit, hit)
			}
			if b.Pos != c.wantPos {
				t.Fatalf("expected pos %v, got %v", c.wantPos, b.Pos)
			}
			if b.Vel != c.wantVel {
				t.Fatalf("expected vel %v, got %v", c.wantVel, b.Vel)
			}
		})
	}
}

func TestResolveBoundsKeepsBodiesInside(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		b := box(r.Float64()*1200-200, r.Float64()*1000-200, 0, 0)
		ResolveBounds(&b, testBounds)
		if b.Pos.X < 15 || b.Pos.X > 785 {
			t.Fatalf("x out of range after resolve: %v", b.Pos.X)
		}
		if b.Pos.Y < 15 || b.Pos.Y > 585 {
			t.Fatalf("y out of range after resolve: %v", b.Pos.Y)
		}
	}
}

func TestResolveBoundsIdempotent(t *testing.T) {
	bodies := []component.Body{
		box(900, 700, 5, 5),
		box(-40, -40, -5, -5),
		box(400.3, 599.7, 0.1, 0.2),
	}
	for _, b := range bodies {
		ResolveBounds(&b, testBounds)
		pos, vel := b.Pos, b.Vel
		if hit := ResolveBounds(&b, testBounds); hit != 0 {
			t.Fatalf("second resolve should not hit, got %b", hit)
		}
		if b.Pos != pos || b.Vel != vel {
			t.Fatalf("second resolve changed body: %v/%v -> %v/%v", pos, vel, b.Pos, b.Vel)
		}
	}
}

func TestFloorBounceThenGravity(t *testing.T) {
	b := box(400, 595, 0, 3)
	ResolveBounds(&b, testBounds)
	if b.Pos.Y != 585 || b.Vel.Y != -3 {
		t.Fatalf("expected clamp to 585 with vy -3, got %v %v", b.Pos.Y, b.Vel.Y)
	}

	Integrate(&b, 9.81, 0.016)
	if !near(b.Vel.Y, -3+9.81*0.016) {
		t.Fatalf("expected vy %v, got %v", -3+9.81*0.016, b.Vel.Y)
	}
	if math.Abs(b.Vel.Y-(-2.843)) > 1e-3 {
		t.Fatalf("expected vy close to -2.843, got %v", b.Vel.Y)
	}
	if !near(b.Pos.Y, 585+b.Vel.Y) {
		t.Fatalf("expected position to move by velocity, got %v", b.Pos.Y)
	}
}

func TestIntegrate(t *testing.T) {
	b := box(100, 100, 2, -1)
	Integrate(&b, 10, 0.5)
	if b.Vel != (cp.Vector{X: 2, Y: 4}) {
		t.Fatalf("unexpected velocity %v", b.Vel)
	}
	if b.Pos != (cp.Vector{X: 102, Y: 104}) {
		t.Fatalf("unexpected position %v", b.Pos)
	}
}

func TestStepHeadOn(t *testing.T) {
	bodies := []component.Body{
		box(100, 100, 5, 0),
		box(115, 100, -5, 0),
	}
	Step(bodies, testBounds, 9.81, 0.016)

	if bodies[0].Vel.X != -5 || bodies[1].Vel.X != 5 {
		t.Fatalf("expected x velocities swapped, got %v %v", bodies[0].Vel.X, bodies[1].Vel.X)
	}
	if !near(bodies[0].Vel.Y, 9.81*0.016) || !near(bodies[1].Vel.Y, 9.81*0.016) {
		t.Fatalf("y velocities should only carry gravity, got %v %v", bodies[0].Vel.Y, bodies[1].Vel.Y)
	}
	if Intersects(&bodies[0], &bodies[1]) {
		t.Fatalf("bodies still overlap after step: %v %v", bodies[0].Pos, bodies[1].Pos)
	}
}
