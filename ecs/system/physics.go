package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs"
	"github.com/milk9111/boxbounce/ecs/component"
)

// Edge reports which world edges a body was clamped against.
type Edge uint8

const (
	EdgeBottom Edge = 1 << iota
	EdgeTop
	EdgeRight
	EdgeLeft
)

// ResolveBounds clamps b inside bounds and reflects the velocity component of
// every axis that was clamped. Bottom wins over top and right over left, so a
// body never clamps against both edges of one axis in the same call.
// bounds.T is the bottom edge (y grows downward).
func ResolveBounds(b *component.Body, bounds cp.BB) Edge {
	if b == nil {
		return 0
	}
	h := b.HalfExtents()

	var hit Edge
	if b.Pos.Y > bounds.T-h.Y {
		b.Pos.Y = bounds.T - h.Y
		b.Vel.Y = -b.Vel.Y
		hit |= EdgeBottom
	} else if b.Pos.Y < bounds.B+h.Y {
		b.Pos.Y = bounds.B + h.Y
		b.Vel.Y = -b.Vel.Y
		hit |= EdgeTop
	}

	if b.Pos.X > bounds.R-h.X {
		b.Pos.X = bounds.R - h.X
		b.Vel.X = -b.Vel.X
		hit |= EdgeRight
	} else if b.Pos.X < bounds.L+h.X {
		b.Pos.X = bounds.L + h.X
		b.Vel.X = -b.Vel.X
		hit |= EdgeLeft
	}
	return hit
}

// Integrate applies one semi-implicit Euler step: gravity into velocity, then
// velocity into position.
func Integrate(b *component.Body, gravity, dt float64) {
	if b == nil {
		return
	}
	b.Vel.Y += gravity * dt
	b.Pos = b.Pos.Add(b.Vel)
}

// Step advances bodies by one frame outside of a world: bounds, integration,
// then pairwise collisions.
func Step(bodies []component.Body, bounds cp.BB, gravity, dt float64) {
	for i := range bodies {
		ResolveBounds(&bodies[i], bounds)
		Integrate(&bodies[i], gravity, dt)
	}
	ResolvePairs(bodies, nil)
}

// BoundsSystem keeps bodies inside the world rectangle.
type BoundsSystem struct{}

func NewBoundsSystem() *BoundsSystem {
	return &BoundsSystem{}
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	bounds := w.Bounds()
	bodies := w.Bodies()
	for i := range bodies {
		if ResolveBounds(&bodies[i], bounds) != 0 {
			w.Events().PushCollision(ecs.CollisionEventBounds, i, -1)
		}
	}
}

// IntegrateSystem applies gravity and moves bodies.
type IntegrateSystem struct{}

func NewIntegrateSystem() *IntegrateSystem {
	return &IntegrateSystem{}
}

func (s *IntegrateSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	g, dt := w.Gravity(), w.TimeStep()
	bodies := w.Bodies()
	for i := range bodies {
		Integrate(&bodies[i], g, dt)
	}
}

// AddPhysicsSystems registers the simulation phases in frame order.
func AddPhysicsSystems(w *ecs.World) {
	w.AddSystem(NewBoundsSystem())
	w.AddSystem(NewIntegrateSystem())
	w.AddSystem(NewCollisionSystem())
}
