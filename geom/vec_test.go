// Copyright © 2024 Galvanized Logic Inc.

package geom

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a, b := V2(1, 2), V2(3, 4)
	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, -2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot: got %v, want 11", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3, 4)
	n, ok := v.Normalize()
	if !ok {
		t.Fatal("Normalize of a non-zero vector should succeed")
	}
	if d := n.Len() - 1; !d.AlmostZero() {
		t.Errorf("Normalized length = %v, want 1", n.Len())
	}
	if _, ok := ZeroVec2.Normalize(); ok {
		t.Error("Normalize of the zero vector should fail")
	}
}

func TestDirVec2Flip(t *testing.T) {
	d := NewDirVec2(V2(1, 0), 5)
	f := d.Flip()
	if f.Len() != 5 {
		t.Errorf("Flip should preserve length, got %v", f.Len())
	}
	if f.Dir() != (Vec2{-1, 0}) {
		t.Errorf("Flip should reverse direction, got %v", f.Dir())
	}
}
