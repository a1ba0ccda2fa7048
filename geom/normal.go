// Copyright © 2024 Galvanized Logic Inc.

package geom

// NormalFrom returns the contact normal pointing from b towards a, and the
// world-space contact point, at the shapes' current placement. It is
// meaningful when a and b are touching (their CardOverlap is near zero on
// the returned normal's axis); callers evaluate shapes at a collide or
// separate time before calling this (§4.4).
func NormalFrom(a, b PlacedShape) (normal DirVec2, contact Vec2) {
	switch {
	case a.Kind() == KindRect && b.Kind() == KindRect:
		return rectRectNormal(a, b)
	case a.Kind() == KindCircle && b.Kind() == KindCircle:
		return circleCircleNormal(a, b)
	case a.Kind() == KindRect && b.Kind() == KindCircle:
		return rectCircleNormal(a, b)
	default:
		n, c := rectCircleNormal(b, a)
		return n.Flip(), c
	}
}

// MaskedNormalFrom is NormalFrom restricted to the directions allowed by
// mask; ok is false if the true normal's nearest cardinal direction is not
// admitted, e.g. a one-way platform hit from the disallowed side (§4.4).
func MaskedNormalFrom(a, b PlacedShape, mask CardMask) (normal DirVec2, contact Vec2, ok bool) {
	normal, contact = NormalFrom(a, b)
	if !mask.Allows(closestCard(normal.Dir())) {
		return DirVec2{}, Vec2{}, false
	}
	return normal, contact, true
}

// closestCard returns the cardinal direction most nearly aligned with dir.
func closestCard(dir Vec2) Card {
	cards := Cards()
	best := cards[0]
	bestDot := dir.Dot(best.Vec2())
	for _, c := range cards[1:] {
		if d := dir.Dot(c.Vec2()); d > bestDot {
			best, bestDot = c, d
		}
	}
	return best
}

// minSepCard returns the cardinal direction along which a and b overlap
// least, the standard AABB "minimum translation vector" axis.
func minSepCard(a, b PlacedShape) Card {
	cards := Cards()
	best := cards[0]
	bestOverlap := a.CardOverlap(b, best)
	for _, c := range cards[1:] {
		if o := a.CardOverlap(b, c); o < bestOverlap {
			best, bestOverlap = c, o
		}
	}
	return best
}

func rectRectNormal(a, b PlacedShape) (DirVec2, Vec2) {
	card := minSepCard(a, b)
	normal := NewDirVec2(card.Flip().Vec2(), a.CardOverlap(b, card))
	contact := clampToOverlap(a.Pos.Lerp(b.Pos, 0.5), a, b)
	return normal, contact
}

// clampToOverlap clamps point into the intersection of a and b's bounding
// rectangles, so the reported contact always lies inside both shapes.
func clampToOverlap(point Vec2, a, b PlacedShape) Vec2 {
	minX, maxX := Max(a.MinX(), b.MinX()), Min(a.MaxX(), b.MaxX())
	minY, maxY := Max(a.MinY(), b.MinY()), Min(a.MaxY(), b.MaxY())
	x := Max(minX, Min(point.X, maxX))
	y := Max(minY, Min(point.Y, maxY))
	return Vec2{X: x, Y: y}
}

func circleCircleNormal(a, b PlacedShape) (DirVec2, Vec2) {
	ac := a.Shape.(CircleShape)
	bc := b.Shape.(CircleShape)
	delta := a.Pos.Sub(b.Pos)
	dir, ok := delta.Normalize()
	if !ok {
		dir = Vec2{X: 1}
	}
	sep := delta.Len() - ac.Radius() - bc.Radius()
	contact := b.Pos.Add(dir.Scale(bc.Radius()))
	return NewDirVec2(dir, sep), contact
}

// rectCircleNormal computes the normal/contact pair from rect towards
// circle, dispatching on the Voronoi Sector the circle's center occupies
// (§4.2): interior and edge sectors reduce to the rect-rect axis formula
// against the circle's bounding square; corner sectors measure straight to
// the nearest corner.
func rectCircleNormal(rect, circle PlacedShape) (DirVec2, Vec2) {
	cc := circle.Shape.(CircleShape)
	sector := rect.Sector(circle.Pos)
	if sector.IsCorner() {
		corner := rect.Corner(sector)
		delta := circle.Pos.Sub(corner)
		dir, ok := delta.Normalize()
		if !ok {
			hv, vv := sector.HCard.Vec2(), sector.VCard.Vec2()
			dir, _ = hv.Add(vv).Normalize()
		}
		sep := delta.Len() - cc.Radius()
		return NewDirVec2(dir.Neg(), sep), corner
	}
	card := sector.HCard
	if !sector.HasH {
		card = sector.VCard
	}
	if !sector.HasH && !sector.HasV {
		card = minSepCard(rect, circle.AsRect())
	}
	overlap := rect.CardOverlap(circle.AsRect(), card)
	contact := circle.Pos.Sub(card.Vec2().Scale(cc.Radius()))
	return NewDirVec2(card.Flip().Vec2(), overlap), contact
}
