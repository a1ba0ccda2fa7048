// Copyright © 2024 Galvanized Logic Inc.

package geom

// DurHitbox is a shape moving and resizing at a constant rate for a
// bounded Duration: the unit the solver reasons about (§3). Duration may
// be Inf to mean "no known expiry yet".
type DurHitbox struct {
	Value    PlacedShape
	Vel      Vel
	Duration Scalar
}

// NewDurHitbox builds a DurHitbox, panicking if duration is negative or if
// a circle's velocity is not isotropic.
func NewDurHitbox(value PlacedShape, vel Vel, duration Scalar) DurHitbox {
	if duration < 0 {
		panic("geom: DurHitbox duration must be non-negative")
	}
	if value.Kind() == KindCircle {
		vel.AssertIsotropic()
	}
	return DurHitbox{Value: value, Vel: vel, Duration: duration}
}

// IsStill reports whether the hitbox has zero velocity and zero resize.
func (h DurHitbox) IsStill() bool { return h.Vel.IsStill() }

// AdvancedShape returns the PlacedShape h occupies after duration t has
// elapsed, t in [0, h.Duration].
func (h DurHitbox) AdvancedShape(t Scalar) PlacedShape {
	return h.Value.Advance(h.Vel.Value, h.Vel.Resize, t)
}

// BoundingBox returns the swept envelope of h over its full Duration: the
// smallest rectangle containing every position/size h passes through.
func (h DurHitbox) BoundingBox() PlacedShape {
	return h.BoundingBoxFor(h.Duration)
}

// BoundingBoxFor returns the swept envelope of h over [0, duration].
// duration may be less than h.Duration to compute a tighter envelope; an
// infinite duration is replaced by h.Duration.
func (h DurHitbox) BoundingBoxFor(duration Scalar) PlacedShape {
	if duration.IsInf() {
		duration = h.Duration
	}
	return h.Value.BoundingBox(h.AdvancedShape(duration))
}

// Negated returns h with its velocity reversed in place, used by the
// rect-circle separate-time solver to rewind a corner collision (§4.2).
func (h DurHitbox) Negated() DurHitbox {
	return DurHitbox{Value: h.Value, Vel: h.Vel.Negate(), Duration: h.Duration}
}

// Rebased returns h with its Value replaced by the shape it occupies at
// time t, and its Duration reduced by t (or left at Inf). Used by the
// rect-circle corner recursion to re-root the search at the corner.
func (h DurHitbox) Rebased(t Scalar) DurHitbox {
	dur := h.Duration
	if !dur.IsInf() {
		dur = dur - t
		if dur < 0 {
			dur = 0
		}
	}
	return DurHitbox{Value: h.AdvancedShape(t), Vel: h.Vel, Duration: dur}
}
