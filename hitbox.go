// Copyright © 2024 Galvanized Logic Inc.

package collider2d

import "github.com/gazed/collider2d/geom"

// HbId is the opaque identity a client assigns to a hitbox when adding it
// to the Engine. The engine never interprets its value; it only compares
// and hashes it (§3).
type HbId uint64

// HbProfile is the client-supplied data attached to a hitbox: its
// identity and the interactivity policy the engine consults before
// reporting an overlap or emitting an event for a pair (§3, §4.5).
type HbProfile interface {
	ID() HbId
	CanInteract(other HbProfile) bool
}

// Hitbox is a shape moving and resizing at a constant rate until an
// absolute EndTime, the engine-facing counterpart of geom.DurHitbox (which
// is expressed as a relative Duration instead). Value is h's placement at
// the moment it was added or last given a new velocity (its epoch, kept
// alongside it by the engine), not necessarily the engine's current time.
type Hitbox struct {
	Value   geom.PlacedShape
	Vel     geom.Vel
	EndTime geom.Scalar
}

// durAt converts h, known to be valid as of epoch, into the
// geom.DurHitbox it represents at time now: its Value advanced by
// (now - epoch), and a Duration of (EndTime - now).
func (h Hitbox) durAt(epoch, now geom.Scalar) geom.DurHitbox {
	value := h.Value.Advance(h.Vel.Value, h.Vel.Resize, now-epoch)
	duration := h.EndTime - now
	if h.EndTime.IsInf() {
		duration = geom.Inf
	}
	return geom.NewDurHitbox(value, h.Vel, duration)
}

// maxRate returns the larger of h's linear speed and resize rate
// magnitude, the "how fast could this hitbox's envelope go stale" figure
// the refresh-time heuristic uses.
func (h Hitbox) maxRate() geom.Scalar {
	return geom.Max(h.Vel.Value.Len(), h.Vel.Resize.Len())
}

// refreshTime returns the absolute time by which h's grid envelope must be
// rebuilt, per the resolution of Open Question 2 (SPEC_FULL.md §11): the
// envelope may loosen by at most one cell width before it risks missing a
// cell transition, so the refresh is due at
// min(EndTime, now + cellWidth/(2*maxRate)); a motionless/non-resizing
// hitbox never needs refreshing before its own EndTime.
func refreshTime(h Hitbox, now, cellWidth geom.Scalar) geom.Scalar {
	rate := h.maxRate()
	if rate.AlmostZero() {
		return h.EndTime
	}
	return geom.Min(h.EndTime, now+cellWidth/(2*rate))
}
