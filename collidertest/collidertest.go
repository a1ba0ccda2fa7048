// Copyright © 2024 Galvanized Logic Inc.

// Package collidertest provides small driving helpers for tests that
// exercise a collider2d.Engine end to end, lifted out of the reusable
// advance/advance_to_event/advance_through_events pattern the reference
// implementation's own test suite used repeatedly (original_source's
// tests.rs) rather than re-deriving it ad hoc in every test file.
package collidertest

import (
	"fmt"

	"github.com/gazed/collider2d"
	"github.com/gazed/collider2d/geom"
)

// Occurrence is one recorded Next() result, captured by value so a test
// can assert against a trace after the fact.
type Occurrence struct {
	Event collider2d.Event
	A, B  collider2d.HbProfile
}

// AdvanceTo drains every occurrence strictly before t, sets the clock to
// t, and returns the occurrences observed in order.
func AdvanceTo(e *collider2d.Engine, t geom.Scalar) []Occurrence {
	var out []Occurrence
	for e.NextTime() < t {
		ev, a, b, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, Occurrence{Event: ev, A: a, B: b})
	}
	if err := e.SetTime(t); err != nil {
		panic(fmt.Sprintf("collidertest: AdvanceTo(%v): %v", t, err))
	}
	return out
}

// AdvanceToEvent drains occurrences, including the next one, stopping as
// soon as it finds one matching ev for the pair (idA, idB) in either
// order. It panics if the engine runs out of occurrences first.
func AdvanceToEvent(e *collider2d.Engine, ev collider2d.Event, idA, idB collider2d.HbId) Occurrence {
	for {
		got, a, b, ok := e.Next()
		if !ok {
			panic("collidertest: AdvanceToEvent: engine exhausted before the expected occurrence")
		}
		occ := Occurrence{Event: got, A: a, B: b}
		if got == ev && matchesPair(a, b, idA, idB) {
			return occ
		}
	}
}

// AdvanceThroughEvents repeatedly calls Next until the queue is exhausted,
// returning every occurrence observed.
func AdvanceThroughEvents(e *collider2d.Engine) []Occurrence {
	var out []Occurrence
	for {
		ev, a, b, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, Occurrence{Event: ev, A: a, B: b})
	}
}

func matchesPair(a, b collider2d.HbProfile, idA, idB collider2d.HbId) bool {
	got := [2]collider2d.HbId{a.ID(), b.ID()}
	want := [2]collider2d.HbId{idA, idB}
	return got == want || got == [2]collider2d.HbId{want[1], want[0]}
}
