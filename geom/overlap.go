// Copyright © 2024 Galvanized Logic Inc.

package geom

// Overlapping reports whether a and b, at their current placement (no
// motion considered), are touching — the exact-shape test CollideTime and
// SeparateTime assume as their t == 0 precondition (§4.2).
func Overlapping(a, b PlacedShape) bool {
	switch {
	case a.Kind() == KindRect && b.Kind() == KindRect:
		return rectRectOverlapping(a, b)
	case a.Kind() == KindCircle && b.Kind() == KindCircle:
		return circleCircleOverlapping(a, b)
	case a.Kind() == KindRect && b.Kind() == KindCircle:
		return rectCircleOverlapping(a, b)
	default:
		return rectCircleOverlapping(b, a)
	}
}

func rectRectOverlapping(a, b PlacedShape) bool {
	for _, c := range Cards() {
		if a.CardOverlap(b, c) <= 0 {
			return false
		}
	}
	return true
}

func circleCircleOverlapping(a, b PlacedShape) bool {
	ac := a.Shape.(CircleShape)
	bc := b.Shape.(CircleShape)
	return a.Pos.Dist(b.Pos) < ac.Radius()+bc.Radius()
}

func rectCircleOverlapping(rect, circle PlacedShape) bool {
	cc := circle.Shape.(CircleShape)
	sector := rect.Sector(circle.Pos)
	if !sector.IsCorner() {
		cards := []Card{}
		if sector.HasH {
			cards = append(cards, sector.HCard)
		}
		if sector.HasV {
			cards = append(cards, sector.VCard)
		}
		if len(cards) == 0 {
			all := Cards()
			cards = all[:]
		}
		for _, c := range cards {
			if rect.CardOverlap(circle.AsRect(), c) <= 0 {
				return false
			}
		}
		return true
	}
	corner := rect.Corner(sector)
	return corner.Dist(circle.Pos) < cc.Radius()
}
