// Copyright © 2024 Galvanized Logic Inc.

package geom

// Vel is the velocity of a PlacedShape: Value moves its position linearly,
// Resize grows or shrinks its dimensions linearly. For a circle, Resize.X
// must equal Resize.Y so the diameter scales isotropically.
type Vel struct {
	Value  Vec2
	Resize Vec2
}

// StillVel is the zero velocity: no motion, no resize.
var StillVel = Vel{}

// IsStill reports whether the velocity is exactly zero in both fields.
func (v Vel) IsStill() bool { return v.Value == ZeroVec2 && v.Resize == ZeroVec2 }

// Negate returns -v, used by the rect-circle separate-time solver to run
// the corner recursion backwards in time (§4.2).
func (v Vel) Negate() Vel { return Vel{Value: v.Value.Neg(), Resize: v.Resize.Neg()} }

// CardOverlap returns the rate of change of CardOverlap between two
// shapes moving with velocities v and o: the same "center, half-extent"
// formula as PlacedShape.CardOverlap, applied to (Value, Resize) instead
// of (Pos, Dims).
func (v Vel) CardOverlap(o Vel, card Card) Scalar {
	halfSum := axisOf(v.Resize, card)/2 + axisOf(o.Resize, card)/2
	return card.Vec2().Dot(v.Value.Sub(o.Value)) + halfSum
}

// AtCorner returns the velocity of the rectangle corner identified by a
// corner Sector: the position velocity plus the resize rate's
// contribution to that corner's motion along each axis (§4.2).
func (v Vel) AtCorner(sector Sector) Vec2 {
	h, vc, ok := sector.CornerCards()
	if !ok {
		panic("geom: AtCorner requires a corner Sector")
	}
	return Vec2{
		X: v.Value.X + cardSign(h)*v.Resize.X/2,
		Y: v.Value.Y + cardSign(vc)*v.Resize.Y/2,
	}
}

// AssertIsotropic panics if v is attached to a circle and its resize is
// not isotropic (§3's contract on circle resize).
func (v Vel) AssertIsotropic() {
	if v.Resize.X != v.Resize.Y {
		panic("geom: circle velocity resize must be isotropic")
	}
}
