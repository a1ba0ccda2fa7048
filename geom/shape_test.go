// Copyright © 2024 Galvanized Logic Inc.

package geom

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := NewPlacedShape(V2(0, 0), NewSquare(2))
	b := NewPlacedShape(V2(1, 0), NewSquare(2))
	if !a.Overlaps(b) {
		t.Error("Expected overlapping squares to report Overlaps() == true")
	}
	c := NewPlacedShape(V2(10, 0), NewSquare(2))
	if a.Overlaps(c) {
		t.Error("Expected far-apart squares to report Overlaps() == false")
	}
}

func TestCardOverlap(t *testing.T) {
	a := NewPlacedShape(V2(0, 0), NewSquare(2))
	b := NewPlacedShape(V2(3, 0), NewSquare(2))
	// a's right edge is at x=1, b's left edge is at x=2: gap of 1, so
	// CardOverlap along PlusX should be -1 (not yet touching).
	if got := a.CardOverlap(b, PlusX); got != -1 {
		t.Errorf("CardOverlap(PlusX) = %v, want -1", got)
	}
}

func TestAdvance(t *testing.T) {
	p := NewPlacedShape(V2(0, 0), NewRect(2, 2))
	moved := p.Advance(V2(1, 0), V2(1, 1), 2)
	if moved.Pos != (Vec2{2, 0}) {
		t.Errorf("Advance position = %v, want {2 0}", moved.Pos)
	}
	if moved.Dims() != (Vec2{4, 4}) {
		t.Errorf("Advance dims = %v, want {4 4}", moved.Dims())
	}
}

func TestAdvancePanicsOnAnisotropicCircleResize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected Advance to panic on anisotropic circle resize")
		}
	}()
	p := NewPlacedShape(V2(0, 0), NewCircle(2))
	p.Advance(ZeroVec2, V2(1, 2), 1)
}

func TestSectorInterior(t *testing.T) {
	p := NewPlacedShape(V2(0, 0), NewSquare(4))
	s := p.Sector(V2(0, 0))
	if s.HasH || s.HasV {
		t.Errorf("Point at center should be in the interior sector, got %+v", s)
	}
}

func TestSectorCorner(t *testing.T) {
	p := NewPlacedShape(V2(0, 0), NewSquare(4))
	s := p.Sector(V2(3, 3))
	if !s.IsCorner() {
		t.Fatalf("Point beyond both edges should be a corner sector, got %+v", s)
	}
	h, v, ok := s.CornerCards()
	if !ok || h != PlusX || v != PlusY {
		t.Errorf("CornerCards() = (%v, %v, %v), want (PlusX, PlusY, true)", h, v, ok)
	}
	corner := p.Corner(s)
	if corner != (Vec2{2, 2}) {
		t.Errorf("Corner() = %v, want {2 2}", corner)
	}
}

func TestBoundingBox(t *testing.T) {
	start := NewPlacedShape(V2(0, 0), NewSquare(2))
	end := NewPlacedShape(V2(4, 0), NewSquare(2))
	box := start.BoundingBox(end)
	if box.MinX() != -1 || box.MaxX() != 5 {
		t.Errorf("BoundingBox X span = [%v, %v], want [-1, 5]", box.MinX(), box.MaxX())
	}
}
