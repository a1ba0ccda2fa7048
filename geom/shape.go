// Copyright © 2024 Galvanized Logic Inc.

package geom

// ShapeKind enumerates the shape variants handled by the solver, used to
// dispatch the rect/rect, circle/circle, and rect/circle solver paths
// without a full type switch at every call site.
type ShapeKind int

const (
	KindRect ShapeKind = iota
	KindCircle
)

// Shape is one of RectShape or CircleShape: a sum type realized as an
// interface with an unexported marker method, following the Shape
// interface convention in gazed/vu/physics/shape.go.
type Shape interface {
	Kind() ShapeKind
	// Dims returns the (w, h) extent of the shape. For a circle this is
	// (d, d) so that overlap math can treat both shapes uniformly.
	Dims() Vec2
	shapeMarker()
}

// RectShape is an axis-aligned rectangle of width W and height H.
type RectShape struct {
	W, H Scalar
}

func (RectShape) Kind() ShapeKind { return KindRect }
func (r RectShape) Dims() Vec2    { return Vec2{r.W, r.H} }
func (RectShape) shapeMarker()    {}

// NewRect builds a RectShape, panicking if either dimension is negative
// (contract violation per §3's invariant on PlacedShape).
func NewRect(w, h Scalar) RectShape {
	if w < 0 || h < 0 {
		panic("geom: rect dimensions must be non-negative")
	}
	return RectShape{W: w, H: h}
}

// NewSquare builds a RectShape with equal sides.
func NewSquare(side Scalar) RectShape { return NewRect(side, side) }

// CircleShape is a circle of diameter D, stored (rather than radius) so
// its Dims() composes uniformly with RectShape in overlap math.
type CircleShape struct {
	D Scalar
}

func (CircleShape) Kind() ShapeKind  { return KindCircle }
func (c CircleShape) Dims() Vec2     { return Vec2{c.D, c.D} }
func (CircleShape) shapeMarker()     {}
func (c CircleShape) Radius() Scalar { return c.D / 2 }


// NewCircle builds a CircleShape, panicking if the diameter is negative.
func NewCircle(d Scalar) CircleShape {
	if d < 0 {
		panic("geom: circle diameter must be non-negative")
	}
	return CircleShape{D: d}
}

// PlacedShape is a Shape positioned in world space.
type PlacedShape struct {
	Pos   Vec2
	Shape Shape
}

// NewPlacedShape places shape at pos.
func NewPlacedShape(pos Vec2, shape Shape) PlacedShape {
	return PlacedShape{Pos: pos, Shape: shape}
}

// Dims returns the shape's (w, h) extent, see Shape.Dims.
func (p PlacedShape) Dims() Vec2 { return p.Shape.Dims() }

// Kind returns the shape variant.
func (p PlacedShape) Kind() ShapeKind { return p.Shape.Kind() }

func (p PlacedShape) MinX() Scalar { return p.Pos.X - p.Dims().X/2 }
func (p PlacedShape) MaxX() Scalar { return p.Pos.X + p.Dims().X/2 }
func (p PlacedShape) MinY() Scalar { return p.Pos.Y - p.Dims().Y/2 }
func (p PlacedShape) MaxY() Scalar { return p.Pos.Y + p.Dims().Y/2 }

// AsRect returns the axis-aligned bounding rectangle of p, placed at the
// same position. For a RectShape this is p itself in substance.
func (p PlacedShape) AsRect() PlacedShape {
	return PlacedShape{Pos: p.Pos, Shape: RectShape{W: p.Dims().X, H: p.Dims().Y}}
}

// Overlaps reports whether the axis-aligned bounding boxes of p and o
// intersect (touching along an edge does not count as overlapping).
func (p PlacedShape) Overlaps(o PlacedShape) bool {
	return p.MaxX() > o.MinX() && p.MinX() < o.MaxX() &&
		p.MaxY() > o.MinY() && p.MinY() < o.MaxY()
}

// BoundingBox returns the smallest axis-aligned rectangle, placed shape,
// that contains both p and end (used to build the swept envelope of a
// moving/resizing hitbox between two points in time).
func (p PlacedShape) BoundingBox(end PlacedShape) PlacedShape {
	minX := Min(p.MinX(), end.MinX())
	maxX := Max(p.MaxX(), end.MaxX())
	minY := Min(p.MinY(), end.MinY())
	maxY := Max(p.MaxY(), end.MaxY())
	return PlacedShape{
		Pos:   Vec2{(minX + maxX) / 2, (minY + maxY) / 2},
		Shape: RectShape{W: maxX - minX, H: maxY - minY},
	}
}

// Advance returns p moved by value and resized by resize over duration t:
// pos' = pos + value*t, dims' = dims + resize*t. It is the caller's
// responsibility to ensure dims' stays non-negative over any interval it
// consults (see §4.1); Advance itself only asserts circle isotropy.
func (p PlacedShape) Advance(value, resize Vec2, t Scalar) PlacedShape {
	newPos := p.Pos.Add(value.Scale(t))
	switch s := p.Shape.(type) {
	case RectShape:
		return PlacedShape{Pos: newPos, Shape: RectShape{W: s.W + resize.X*t, H: s.H + resize.Y*t}}
	case CircleShape:
		if resize.X != resize.Y {
			panic("geom: circle resize must be isotropic")
		}
		return PlacedShape{Pos: newPos, Shape: CircleShape{D: s.D + resize.X*t}}
	default:
		panic("geom: unknown Shape implementation")
	}
}

// axisOf returns the X or Y component of v depending on whether card is a
// horizontal or vertical direction.
func axisOf(v Vec2, card Card) Scalar {
	switch card {
	case MinusX, PlusX:
		return v.X
	default:
		return v.Y
	}
}

// CardOverlap returns the signed penetration of p past o's edge in the
// given cardinal direction: positive when p extends past that edge of o.
// This is the generic "bounds" formula shared by PlacedShape and Vel
// (§4.1, §4.2): dot(card, centerA - centerB) + half the combined extent
// along that axis.
func (p PlacedShape) CardOverlap(o PlacedShape, card Card) Scalar {
	halfSum := axisOf(p.Dims(), card)/2 + axisOf(o.Dims(), card)/2
	return card.Vec2().Dot(p.Pos.Sub(o.Pos)) + halfSum
}

// Sector describes which of the nine Voronoi regions of a rectangle a
// point falls in: interior (HasH == HasV == false), one of four edges
// (exactly one of HasH/HasV true), or one of four corners (both true).
type Sector struct {
	HCard Card
	HasH  bool
	VCard Card
	HasV  bool
}

// IsCorner reports whether the sector is one of the four corner regions.
func (s Sector) IsCorner() bool { return s.HasH && s.HasV }

// CornerCards returns the two cardinal directions defining a corner
// sector, and false if s is not a corner.
func (s Sector) CornerCards() (h, v Card, ok bool) {
	if !s.IsCorner() {
		return 0, 0, false
	}
	return s.HCard, s.VCard, true
}

// Sector returns the Voronoi sector of the rectangle p in which point
// falls, per §4.2's rect-circle Voronoi decomposition.
func (p PlacedShape) Sector(point Vec2) Sector {
	var s Sector
	halfW := p.Dims().X / 2
	halfH := p.Dims().Y / 2
	dx := point.X - p.Pos.X
	dy := point.Y - p.Pos.Y
	if dx < -halfW {
		s.HasH, s.HCard = true, MinusX
	} else if dx > halfW {
		s.HasH, s.HCard = true, PlusX
	}
	if dy < -halfH {
		s.HasV, s.VCard = true, MinusY
	} else if dy > halfH {
		s.HasV, s.VCard = true, PlusY
	}
	return s
}

func cardSign(c Card) Scalar {
	switch c {
	case PlusX, PlusY:
		return 1
	default:
		return -1
	}
}

// Corner returns the position of the rectangle corner identified by a
// corner Sector. Panics if sector is not a corner sector.
func (p PlacedShape) Corner(sector Sector) Vec2 {
	h, v, ok := sector.CornerCards()
	if !ok {
		panic("geom: Corner requires a corner Sector")
	}
	return Vec2{
		X: p.Pos.X + cardSign(h)*p.Dims().X/2,
		Y: p.Pos.Y + cardSign(v)*p.Dims().Y/2,
	}
}
