package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs"
	"github.com/milk9111/boxbounce/ecs/component"
)

// Axis is the separation axis chosen for a contact.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Intersects reports whether two bodies overlap. Touching edges do not count.
func Intersects(a, b *component.Body) bool {
	ab, bb := a.BB(), b.BB()
	return ab.L < bb.R &&
		ab.R > bb.L &&
		ab.B < bb.T &&
		ab.T > bb.B
}

// SeparationAxis picks X when the displacement is larger along X, else Y.
func SeparationAxis(d cp.Vector) Axis {
	if math.Abs(d.X) > math.Abs(d.Y) {
		return AxisX
	}
	return AxisY
}

// ElasticExchange returns the post-collision velocities of a 1D elastic
// collision between masses ma and mb.
func ElasticExchange(va, vb, ma, mb float64) (float64, float64) {
	sum := ma + mb
	na := va*(ma-mb)/sum + vb*(2*mb)/sum
	nb := va*(2*ma)/sum + vb*(mb-ma)/sum
	return na, nb
}

func massOf(b *component.Body) float64 {
	if b.Mass <= 0 {
		return 1
	}
	return b.Mass
}

// ResolvePair pushes two overlapping bodies apart along the axis of larger
// center displacement and exchanges their velocities along it.
func ResolvePair(a, b *component.Body) Axis {
	d := a.Pos.Sub(b.Pos)
	axis := SeparationAxis(d)
	ma, mb := massOf(a), massOf(b)

	if axis == AxisX {
		shift := ((a.Size.X+b.Size.X)/2 - math.Abs(d.X)) / 2
		if d.X > 0 {
			a.Pos.X += shift
			b.Pos.X -= shift
		} else {
			a.Pos.X -= shift
			b.Pos.X += shift
		}
		a.Vel.X, b.Vel.X = ElasticExchange(a.Vel.X, b.Vel.X, ma, mb)
		return axis
	}

	shift := ((a.Size.Y+b.Size.Y)/2 - math.Abs(d.Y)) / 2
	if d.Y > 0 {
		a.Pos.Y += shift
		b.Pos.Y -= shift
	} else {
		a.Pos.Y -= shift
		b.Pos.Y += shift
	}
	a.Vel.Y, b.Vel.Y = ElasticExchange(a.Vel.Y, b.Vel.Y, ma, mb)
	return axis
}

// ResolvePairs checks every pair i<j in index order and resolves overlaps in
// place. Later pairs see the state left by earlier ones. onContact may be nil.
func ResolvePairs(bodies []component.Body, onContact func(i, j int, axis Axis)) int {
	contacts := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !Intersects(&bodies[i], &bodies[j]) {
				continue
			}
			axis := ResolvePair(&bodies[i], &bodies[j])
			contacts++
			if onContact != nil {
				onContact(i, j, axis)
			}
		}
	}
	return contacts
}

// CollisionSystem resolves body-body contacts.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	events := w.Events()
	ResolvePairs(w.Bodies(), func(i, j int, _ Axis) {
		events.PushCollision(ecs.CollisionEventContact, i, j)
	})
}
