package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventCollision = "collision"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventBounds  CollisionEventKind = "bounds"
	CollisionEventContact CollisionEventKind = "contact"
)

// CollisionEvent is emitted when a body hits a world edge or another body.
// B is -1 for boundary hits.
type CollisionEvent struct {
	Kind CollisionEventKind
	A, B int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}

// PushCollision queues a collision event.
func (q *EventQueue) PushCollision(kind CollisionEventKind, a, b int) {
	q.Push(Event{Type: EventCollision, Data: CollisionEvent{Kind: kind, A: a, B: b}})
}

// CountCollisions counts queued collision events of the given kind.
func CountCollisions(events []Event, kind CollisionEventKind) int {
	n := 0
	for _, evt := range events {
		if evt.Type != EventCollision {
			continue
		}
		if ce, ok := evt.Data.(CollisionEvent); ok && ce.Kind == kind {
			n++
		}
	}
	return n
}
