// Copyright © 2024 Galvanized Logic Inc.

// Package collider2d is a continuous 2D collision detection engine: given
// moving, optionally resizing, axis-aligned rectangles and circles, it
// predicts the exact future instants of first contact and first
// separation and exposes them through a logical clock the client drives
// forward with Next. See geom for the underlying shape and solver types.
//
// Engine is not safe for concurrent use from multiple goroutines without
// external synchronization, matching gazed/vu/physics.Simulate's
// single-call-site convention.
package collider2d

import (
	"log/slog"

	"github.com/gazed/collider2d/geom"
	"github.com/gazed/collider2d/internal/tightset"
)

// hitboxState is the engine's private bookkeeping for one added hitbox:
// its client data, its current grid placement, and the two tight sets
// used to avoid duplicate work — overlaps (hitboxes it is currently
// touching) and scheduled (hitboxes it already has a pending queue entry
// against, so a replan never pushes a second entry for the same pair).
type hitboxState struct {
	profile    HbProfile
	hb         Hitbox
	epoch      geom.Scalar
	generation uint64
	cells      []cellCoord
	overlaps   *tightset.Set[HbId]
	scheduled  *tightset.Set[HbId]
}

// dur returns the geom.DurHitbox s represents at the engine's current
// time, advancing its stored Value from the epoch it was last set at.
func (s *hitboxState) dur(now geom.Scalar) geom.DurHitbox {
	return s.hb.durAt(s.epoch, now)
}

// valueNow returns s's PlacedShape advanced to the engine's current time.
func (s *hitboxState) valueNow(now geom.Scalar) geom.PlacedShape {
	return s.dur(now).Value
}

// Engine is the collider2d façade: it owns a spatial grid, a set of
// tracked hitboxes, and the event queue that schedules their pairwise
// Collide/Separate occurrences (§4.4-§4.6).
type Engine struct {
	now       geom.Scalar
	cellWidth geom.Scalar
	padding   geom.Scalar
	grid      *grid
	states    map[HbId]*hitboxState
	queue     *eventQueue
}

// New builds an empty Engine. cellWidth must be positive (it is the side
// length of the spatial grid's square cells); padding must be positive
// (the minimum gap SeparateTime requires before reporting a pair as no
// longer touching, see §4.2).
func New(cellWidth, padding geom.Scalar) (*Engine, error) {
	if cellWidth <= 0 || padding <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Engine{
		cellWidth: cellWidth,
		padding:   padding,
		grid:      newGrid(cellWidth),
		states:    make(map[HbId]*hitboxState),
		queue:     newEventQueue(),
	}, nil
}

// Time returns the engine's current logical clock value.
func (e *Engine) Time() geom.Scalar { return e.now }

// NextTime returns the time of the next Collide or Separate occurrence
// Next would report, or geom.Inf if none is currently scheduled. Internal
// refresh occurrences are never reported.
func (e *Engine) NextTime() geom.Scalar {
	t := geom.Inf
	for _, entry := range e.queue.h {
		if entry.kind != kindRefresh && entry.time < t && !e.isStale(entry) {
			t = entry.time
		}
	}
	return t
}

// SetTime advances the logical clock directly to t without processing any
// occurrence in between, for a client that already knows nothing of
// interest happens before t. t must not precede the current time.
func (e *Engine) SetTime(t geom.Scalar) error {
	if t < e.now {
		return ErrTimeRegression
	}
	e.now = t
	return nil
}

// Next advances the logical clock to the next scheduled occurrence and
// reports it. Internal envelope-refresh occurrences are processed and
// consumed transparently; ok is false once no Collide or Separate
// occurrence remains scheduled.
func (e *Engine) Next() (ev Event, a, b HbProfile, ok bool) {
	for {
		if e.NextTime().IsInf() {
			return 0, nil, nil, false
		}
		entry, found := e.nextValidEntry()
		if !found {
			return 0, nil, nil, false
		}
		e.queue.pop()
		e.now = entry.time

		if entry.kind == kindRefresh {
			e.refreshHitbox(entry.idA)
			continue
		}

		sa, okA := e.states[entry.idA]
		sb, okB := e.states[entry.idB]
		if !okA || !okB {
			continue
		}
		sa.scheduled.Remove(entry.idB)
		sb.scheduled.Remove(entry.idA)

		switch entry.kind {
		case kindCollide:
			sa.overlaps.Add(entry.idB)
			sb.overlaps.Add(entry.idA)
			e.scheduleSeparate(entry.idA, entry.idB)
			return EventCollide, sa.profile, sb.profile, true
		default:
			sa.overlaps.Remove(entry.idB)
			sb.overlaps.Remove(entry.idA)
			e.scheduleCollide(entry.idA, entry.idB)
			return EventSeparate, sa.profile, sb.profile, true
		}
	}
}

// nextValidEntry returns the earliest non-stale entry without removing
// it, discarding any stale entries (referring to a removed hitbox or one
// whose generation has since moved on) it finds along the way.
func (e *Engine) nextValidEntry() (*queueEntry, bool) {
	for {
		entry, ok := e.queue.peek()
		if !ok {
			return nil, false
		}
		if e.isStale(entry) {
			e.queue.pop()
			continue
		}
		return entry, true
	}
}

func (e *Engine) isStale(entry *queueEntry) bool {
	sa, ok := e.states[entry.idA]
	if !ok || sa.generation != entry.genA {
		return true
	}
	if entry.kind == kindRefresh {
		return false
	}
	sb, ok := e.states[entry.idB]
	if !ok || sb.generation != entry.genB {
		return true
	}
	return false
}

// AddHitbox registers hb under profile's identity, returning the profiles
// of every already-tracked hitbox it overlaps right away.
func (e *Engine) AddHitbox(profile HbProfile, hb Hitbox) ([]HbProfile, error) {
	id := profile.ID()
	if _, exists := e.states[id]; exists {
		return nil, ErrDuplicateHitbox
	}
	state := &hitboxState{
		profile:    profile,
		hb:         hb,
		epoch:      e.now,
		generation: 1,
		overlaps:   tightset.New[HbId](),
		scheduled:  tightset.New[HbId](),
	}
	state.cells = e.grid.insert(id, state.dur(e.now).BoundingBox())
	e.states[id] = state

	immediate := e.planFor(id)
	e.scheduleRefresh(id)
	return immediate, nil
}

// RemoveHitbox drops id from the engine, returning the profiles of every
// hitbox it was overlapping at the time of removal.
func (e *Engine) RemoveHitbox(id HbId) ([]HbProfile, error) {
	state, ok := e.states[id]
	if !ok {
		return nil, ErrUnknownHitbox
	}
	var freed []HbProfile
	state.overlaps.Each(func(other HbId) {
		if os, ok := e.states[other]; ok {
			os.overlaps.Remove(id)
			freed = append(freed, os.profile)
		}
	})
	state.scheduled.Each(func(other HbId) {
		if os, ok := e.states[other]; ok {
			os.scheduled.Remove(id)
		}
	})
	e.grid.remove(id, state.cells)
	delete(e.states, id)
	return freed, nil
}

// GetHitbox returns id's current Hitbox, its Value advanced to the
// engine's current time.
func (e *Engine) GetHitbox(id HbId) (Hitbox, error) {
	state, ok := e.states[id]
	if !ok {
		return Hitbox{}, ErrUnknownHitbox
	}
	return Hitbox{Value: state.valueNow(e.now), Vel: state.hb.Vel, EndTime: state.hb.EndTime}, nil
}

// SetHitboxVel updates id's velocity, invalidating every occurrence
// scheduled against its previous motion and replanning against its
// current grid neighbors.
func (e *Engine) SetHitboxVel(id HbId, vel geom.Vel) error {
	state, ok := e.states[id]
	if !ok {
		return ErrUnknownHitbox
	}
	state.hb.Value = state.valueNow(e.now)
	state.hb.Vel = vel
	state.epoch = e.now
	state.generation++
	state.scheduled.Each(func(other HbId) {
		if os, ok := e.states[other]; ok {
			os.scheduled.Remove(id)
		}
	})
	state.scheduled = tightset.New[HbId]()

	e.grid.remove(id, state.cells)
	state.cells = e.grid.insert(id, state.dur(e.now).BoundingBox())

	e.planFor(id)
	e.scheduleRefresh(id)
	return nil
}

// GetOverlaps returns the profiles of every hitbox id currently overlaps.
func (e *Engine) GetOverlaps(id HbId) ([]HbProfile, error) {
	state, ok := e.states[id]
	if !ok {
		return nil, ErrUnknownHitbox
	}
	out := make([]HbProfile, 0, state.overlaps.Len())
	state.overlaps.Each(func(other HbId) {
		if os, ok := e.states[other]; ok {
			out = append(out, os.profile)
		}
	})
	return out, nil
}

// IsOverlapping reports whether a and b are currently touching.
func (e *Engine) IsOverlapping(a, b HbId) (bool, error) {
	sa, ok := e.states[a]
	if !ok {
		return false, ErrUnknownHitbox
	}
	if _, ok := e.states[b]; !ok {
		return false, ErrUnknownHitbox
	}
	return sa.overlaps.Contains(b), nil
}

// QueryOverlaps returns the profiles of every tracked hitbox that
// currently overlaps shape and can interact with profile, without adding
// shape to the engine. Used for one-off "is this spot free" probes (§4.4).
func (e *Engine) QueryOverlaps(shape geom.PlacedShape, profile HbProfile) []HbProfile {
	cells := e.grid.cellsFor(shape)
	neighbors := e.grid.neighbors(cells)
	var out []HbProfile
	for id := range neighbors {
		state, ok := e.states[id]
		if !ok || !canInteract(profile, state.profile) {
			continue
		}
		if geom.Overlapping(shape, state.valueNow(e.now)) {
			out = append(out, state.profile)
		}
	}
	return out
}

func canInteract(a, b HbProfile) bool { return a.CanInteract(b) && b.CanInteract(a) }

// planFor re-evaluates id against every hitbox sharing a grid cell with
// it, updating the overlap bookkeeping and scheduling the appropriate
// Collide or Separate occurrence for each pair, skipping any pair that
// already has one scheduled. It returns the profiles of every neighbor id
// is found to overlap right now.
func (e *Engine) planFor(id HbId) []HbProfile {
	state := e.states[id]
	neighbors := e.grid.neighbors(state.cells)
	delete(neighbors, id)

	var immediate []HbProfile
	for other := range neighbors {
		otherState, ok := e.states[other]
		if !ok || !canInteract(state.profile, otherState.profile) {
			continue
		}
		if state.overlaps.Contains(other) || geom.Overlapping(state.valueNow(e.now), otherState.valueNow(e.now)) {
			state.overlaps.Add(other)
			otherState.overlaps.Add(id)
			immediate = append(immediate, otherState.profile)
			e.scheduleSeparate(id, other)
		} else {
			state.overlaps.Remove(other)
			otherState.overlaps.Remove(id)
			e.scheduleCollide(id, other)
		}
	}
	return immediate
}

func (e *Engine) scheduleCollide(idA, idB HbId) {
	sa, sb := e.states[idA], e.states[idB]
	if sa.scheduled.Contains(idB) {
		return
	}
	t, ok := geom.CollideTime(sa.dur(e.now), sb.dur(e.now))
	if !ok {
		return
	}
	e.queue.push(&queueEntry{
		time: e.now + t, kind: kindCollide,
		idA: idA, idB: idB, genA: sa.generation, genB: sb.generation,
	})
	sa.scheduled.Add(idB)
	sb.scheduled.Add(idA)
}

func (e *Engine) scheduleSeparate(idA, idB HbId) {
	sa, sb := e.states[idA], e.states[idB]
	if sa.scheduled.Contains(idB) {
		return
	}
	t, ok := geom.SeparateTime(sa.dur(e.now), sb.dur(e.now), e.padding)
	if !ok {
		return
	}
	e.queue.push(&queueEntry{
		time: e.now + t, kind: kindSeparate,
		idA: idA, idB: idB, genA: sa.generation, genB: sb.generation,
	})
	sa.scheduled.Add(idB)
	sb.scheduled.Add(idA)
}

func (e *Engine) scheduleRefresh(id HbId) {
	state := e.states[id]
	rt := refreshTime(state.hb, e.now, e.cellWidth)
	if rt <= e.now {
		return
	}
	e.queue.push(&queueEntry{time: rt, kind: kindRefresh, idA: id, genA: state.generation})
}

// refreshHitbox rebuilds id's grid envelope from the current time forward
// and replans it against any newly adjacent hitboxes, then schedules its
// next refresh. The hitbox's own motion is unchanged, so any already
// pending Collide/Separate entry for it remains valid and is left alone.
func (e *Engine) refreshHitbox(id HbId) {
	state, ok := e.states[id]
	if !ok {
		return
	}
	if state.hb.EndTime <= e.now {
		slog.Debug("refresh skipped: hitbox past its end time", "id", id)
		return
	}
	e.grid.remove(id, state.cells)
	state.cells = e.grid.insert(id, state.dur(e.now).BoundingBox())
	e.planFor(id)
	e.scheduleRefresh(id)
}
