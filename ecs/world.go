package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs/component"
)

// Stats summarizes the most recent simulated frame.
type Stats struct {
	Frame           uint64
	Contacts        int
	BoundaryHits    int
	TotalContacts   uint64
	TotalBoundaries uint64
}

// World owns the body store, the world constants and system order.
type World struct {
	bodies    []component.Body
	bounds    cp.BB
	gravity   float64
	timeStep  float64
	scheduler Scheduler
	events    EventQueue
	paused    bool
	stats     Stats
}

// NewWorld creates an empty world with the given bounds.
// B is the top edge and T the bottom edge of the bounds.
func NewWorld(bounds cp.BB, gravity, timeStep float64) *World {
	return &World{
		bounds:   bounds,
		gravity:  gravity,
		timeStep: timeStep,
	}
}

// Bodies returns the body store. Systems mutate bodies in place through it.
func (w *World) Bodies() []component.Body {
	if w == nil {
		return nil
	}
	return w.bodies
}

// SetBodies replaces the body store.
func (w *World) SetBodies(bodies []component.Body) {
	if w == nil {
		return
	}
	w.bodies = bodies
}

// AddBody appends a body and returns its index.
func (w *World) AddBody(b component.Body) int {
	w.bodies = append(w.bodies, b)
	return len(w.bodies) - 1
}

// Bounds returns the world rectangle.
func (w *World) Bounds() cp.BB {
	if w == nil {
		return cp.BB{}
	}
	return w.bounds
}

// Size returns the world width and height.
func (w *World) Size() (float64, float64) {
	b := w.Bounds()
	return b.R - b.L, b.T - b.B
}

// Gravity returns the gravity constant.
func (w *World) Gravity() float64 {
	if w == nil {
		return 0
	}
	return w.gravity
}

// TimeStep returns the fixed per-frame time step.
func (w *World) TimeStep() float64 {
	if w == nil {
		return 0
	}
	return w.timeStep
}

// SetGravity replaces the gravity constant and time step.
func (w *World) SetGravity(gravity, timeStep float64) {
	if w == nil {
		return
	}
	w.gravity = gravity
	w.timeStep = timeStep
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns a copy of the system order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Paused reports whether stepping is suspended.
func (w *World) Paused() bool {
	return w != nil && w.paused
}

// SetPaused suspends or resumes stepping.
func (w *World) SetPaused(paused bool) {
	if w == nil {
		return
	}
	w.paused = paused
}

// TogglePaused flips the paused state and returns the new value.
func (w *World) TogglePaused() bool {
	if w == nil {
		return false
	}
	w.paused = !w.paused
	return w.paused
}

// Update runs all systems once unless the world is paused.
func (w *World) Update() {
	if w == nil || w.paused {
		return
	}
	w.scheduler.Update(w)

	pending := w.events.Pending()
	w.stats.Frame++
	w.stats.Contacts = CountCollisions(pending, CollisionEventContact)
	w.stats.BoundaryHits = CountCollisions(pending, CollisionEventBounds)
	w.stats.TotalContacts += uint64(w.stats.Contacts)
	w.stats.TotalBoundaries += uint64(w.stats.BoundaryHits)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Stats returns counters for the last simulated frame.
func (w *World) Stats() Stats {
	if w == nil {
		return Stats{}
	}
	return w.stats
}

// Reset replaces the body store and clears counters and pending events.
func (w *World) Reset(bodies []component.Body) {
	if w == nil {
		return
	}
	w.bodies = bodies
	w.stats = Stats{}
	w.events.flush()
}
