// Copyright © 2024 Galvanized Logic Inc.

package geom

// CollideTime returns the earliest time t in [0, min(a.Duration,
// b.Duration)] at which a and b start overlapping, assuming they do not
// overlap at t == 0. ok is false if they never collide within that window.
func CollideTime(a, b DurHitbox) (t Scalar, ok bool) {
	switch {
	case a.Value.Kind() == KindRect && b.Value.Kind() == KindRect:
		return rectRectCollideTime(a, b)
	case a.Value.Kind() == KindCircle && b.Value.Kind() == KindCircle:
		return circleCircleCollideTime(a, b)
	default:
		return rectCircleCollideTime(a, b)
	}
}

// SeparateTime returns the earliest time t in [0, min(a.Duration,
// b.Duration)] at which a and b are no longer overlapping by at least
// padding, assuming they do overlap at t == 0. ok is false if they remain
// within padding for the entire window.
func SeparateTime(a, b DurHitbox, padding Scalar) (t Scalar, ok bool) {
	switch {
	case a.Value.Kind() == KindRect && b.Value.Kind() == KindRect:
		return rectRectSeparateTime(a, b, padding)
	case a.Value.Kind() == KindCircle && b.Value.Kind() == KindCircle:
		return circleCircleSeparateTime(a, b, padding)
	default:
		return rectCircleSeparateTime(a, b, padding)
	}
}

func hitboxWindow(a, b DurHitbox) Scalar { return Min(a.Duration, b.Duration) }

// rectRectInterval returns the time interval [lo, hi] during which the
// axis-aligned bounding boxes of a and b overlap on every cardinal axis,
// i.e. the 2D AABBs overlap (§4.1), after uniformly growing every card's
// overlap threshold by pad (pad == 0 for an exact touch test).
func rectRectInterval(a, b DurHitbox, pad Scalar) (lo, hi Scalar, ok bool) {
	lo, hi = -Inf, Inf
	for _, card := range Cards() {
		c0 := a.Value.CardOverlap(b.Value, card) + pad
		c1 := a.Vel.CardOverlap(b.Vel, card)
		switch {
		case c1.AlmostZero():
			if c0 <= 0 {
				return 0, 0, false
			}
		case c1 > 0:
			lo = Max(lo, -c0/c1)
		default:
			hi = Min(hi, -c0/c1)
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

func rectRectCollideTime(a, b DurHitbox) (Scalar, bool) {
	lo, hi, ok := rectRectInterval(a, b, 0)
	if !ok || hi < 0 {
		return 0, false
	}
	if lo < 0 {
		lo = 0
	}
	if lo > hitboxWindow(a, b) {
		return 0, false
	}
	return lo, true
}

func rectRectSeparateTime(a, b DurHitbox, padding Scalar) (Scalar, bool) {
	_, hi, ok := rectRectInterval(a, b, padding)
	if !ok {
		return 0, true
	}
	if hi < 0 {
		return 0, true
	}
	if hi.IsInf() {
		return 0, false
	}
	if hi > hitboxWindow(a, b) {
		return 0, false
	}
	return hi, true
}

// circleCircleCoeffs returns the coefficients of |relPos + relVel*t|^2 -
// (r0 + rv*t)^2 == 0, the equation whose roots are the times at which the
// two circles' boundaries touch (§4.3).
func circleCircleCoeffs(a, b DurHitbox, pad Scalar) (A, B, C Scalar) {
	ac := a.Value.Shape.(CircleShape)
	bc := b.Value.Shape.(CircleShape)
	dp := a.Value.Pos.Sub(b.Value.Pos)
	dv := a.Vel.Value.Sub(b.Vel.Value)
	r0 := ac.Radius() + bc.Radius() + pad
	rv := (a.Vel.Resize.X + b.Vel.Resize.X) / 2
	A = dv.Dot(dv) - rv*rv
	B = 2 * (dp.Dot(dv) - r0*rv)
	C = dp.Dot(dp) - r0*r0
	return A, B, C
}

func circleCircleCollideTime(a, b DurHitbox) (Scalar, bool) {
	t, ok := rawCircleCircleCollideTime(a, b)
	if !ok || t > hitboxWindow(a, b) {
		return 0, false
	}
	return t, true
}

// rawCircleCircleCollideTime is circleCircleCollideTime without the
// window clamp, used by rebasedRectCircleCollideTime's corner recursion:
// that recursion's own result is clamped against the *original* (not
// rebased) duration exactly once, by rectCircleCollideTime/
// rectCircleSeparateTime, mirroring the ground truth's single final
// duration check in time_unpadded rather than re-checking at every
// recursive step.
func rawCircleCircleCollideTime(a, b DurHitbox) (Scalar, bool) {
	A, B, C := circleCircleCoeffs(a, b, 0)
	lo, hi, ok := quadRoots(A, B, C)
	if !ok {
		return 0, false
	}
	t := lo
	if t < 0 {
		t = hi
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

func circleCircleSeparateTime(a, b DurHitbox, padding Scalar) (Scalar, bool) {
	A, B, C := circleCircleCoeffs(a, b, padding)
	if C >= 0 {
		return 0, true
	}
	lo, hi, ok := quadRoots(A, B, C)
	if !ok {
		return 0, false
	}
	t := lo
	if t < 0 {
		t = hi
	}
	if t < 0 || t > hitboxWindow(a, b) {
		return 0, false
	}
	return t, true
}

// rectCircleCollideTime handles the mixed case in two phases (§4.2): first
// it finds the time the circle's bounding box (CardOverlap already treats
// Dims() uniformly, so this is just a rect-rect interval test) enters the
// rectangle's, using rectRectCollideTime verbatim. That base time is exact
// unless the circle's center lands in one of the rectangle's four rounded
// corner regions at that instant, in which case the two are translated to
// the base time and the remaining gap is closed with a circle-circle test
// against a zero-radius point reified at the corner.
func rectCircleCollideTime(a, b DurHitbox) (Scalar, bool) {
	rectHb, circHb, _ := orderRectCircle(a, b)
	baseTime, ok := rectRectCollideTime(rectHb, circHb)
	if !ok {
		return 0, false
	}
	extra := rebasedRectCircleCollideTime(rectHb.Rebased(baseTime), circHb.Rebased(baseTime))
	t := baseTime + extra
	if extra.IsInf() || t > hitboxWindow(rectHb, circHb) {
		return 0, false
	}
	return t, true
}

// rectCircleSeparateTime mirrors rectCircleCollideTime's two-phase
// structure, but padding cannot be handed to rectRectInterval as a bare
// threshold the way rectRectSeparateTime does: the corner recursion must
// see the same padded boundary the bounding-box phase used, so instead the
// circle's diameter is grown by 2*padding up front (§4.2) and carried
// through both phases, with the interval test itself run unpadded. First
// this finds the time the grown bounding boxes fully part (unclamped,
// since the corner correction below may still pull the true answer back
// inside the window even when this intermediate exceeds it), then — if the
// circle sits in a corner region at that instant — rewinds from it to find
// how much earlier the rounded boundary actually cleared, by negating both
// velocities and re-running the same corner collide test (§4.2's
// negate-and-rewind construction).
func rectCircleSeparateTime(a, b DurHitbox, padding Scalar) (Scalar, bool) {
	rectHb, circHb, _ := orderRectCircle(a, b)
	window := hitboxWindow(rectHb, circHb)
	paddedCirc := inflatedCircle(circHb, padding)

	_, hi, ok := rectRectInterval(rectHb, paddedCirc, 0)
	if !ok || hi <= 0 {
		return 0, true
	}
	if hi.IsInf() {
		return 0, false
	}

	negRect := rectHb.Rebased(hi).Negated()
	negCirc := paddedCirc.Rebased(hi).Negated()
	extra := rebasedRectCircleCollideTime(negRect, negCirc)

	t := hi - extra
	if t < 0 {
		t = 0
	}
	if t > window {
		return 0, false
	}
	return t, true
}

// inflatedCircle returns circHb with its diameter grown by 2*pad, same
// position/velocity/duration otherwise: the rect-circle analogue of the
// padding rectRectInterval applies directly to a CardOverlap threshold,
// needed here because the padded circle must also be the one consulted by
// the corner recursion, not just the initial bounding-box phase.
func inflatedCircle(circHb DurHitbox, pad Scalar) DurHitbox {
	c := circHb.Value.Shape.(CircleShape)
	grown := NewPlacedShape(circHb.Value.Pos, NewCircle(c.D+2*pad))
	return DurHitbox{Value: grown, Vel: circHb.Vel, Duration: circHb.Duration}
}

func orderRectCircle(a, b DurHitbox) (rectHb, circHb DurHitbox, swapped bool) {
	if a.Value.Kind() == KindRect {
		return a, b, false
	}
	return b, a, true
}

// rebasedRectCircleCollideTime returns the additional time, on top of
// whatever already brought rectHb and circHb to their current Value, before
// the circle's own round boundary (rather than its bounding box) touches
// the rectangle: zero unless the circle's center sits in one of the four
// corner Voronoi sectors, in which case the answer comes from recursing a
// circle-circle test against a zero-radius point at that corner. Never
// fails outright — an unreachable corner test reports Inf, matching the
// "no further correction within reach" case.
func rebasedRectCircleCollideTime(rectHb, circHb DurHitbox) Scalar {
	sector := rectHb.Value.Sector(circHb.Value.Pos)
	if !sector.IsCorner() {
		return 0
	}
	corner := cornerDurHitbox(rectHb, sector)
	if t, ok := rawCircleCircleCollideTime(corner, circHb); ok {
		return t
	}
	return Inf
}

// cornerDurHitbox reifies one corner of a rectangle's DurHitbox as a
// zero-diameter CircleShape DurHitbox moving with the corner's own
// velocity, so the existing circle-circle solver can be reused verbatim.
func cornerDurHitbox(rectHb DurHitbox, sector Sector) DurHitbox {
	pos := rectHb.Value.Corner(sector)
	vel := rectHb.Vel.AtCorner(sector)
	return DurHitbox{
		Value:    NewPlacedShape(pos, NewCircle(0)),
		Vel:      Vel{Value: vel},
		Duration: rectHb.Duration,
	}
}
