// Copyright © 2024 Galvanized Logic Inc.

package collider2d

// Event is one of EventCollide or EventSeparate, the two occurrences the
// engine's event queue can emit for a pair of hitboxes (§4.6).
type Event int

const (
	EventCollide Event = iota
	EventSeparate
)

func (ev Event) String() string {
	switch ev {
	case EventCollide:
		return "Collide"
	case EventSeparate:
		return "Separate"
	default:
		return "Event(?)"
	}
}
