// Copyright © 2024 Galvanized Logic Inc.

package tightset

import "testing"

func TestAddContainsRemove(t *testing.T) {
	s := New[int]()
	s.Add(1)
	s.Add(2)
	if !s.Contains(1) || !s.Contains(2) {
		t.Fatal("Expected both added elements to be present")
	}
	s.Remove(1)
	if s.Contains(1) {
		t.Error("Expected 1 to be removed")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestShrinksAfterBulkRemoval(t *testing.T) {
	s := New[int]()
	for i := 0; i < 100; i++ {
		s.Add(i)
	}
	if s.capacity < 100 {
		t.Fatalf("Expected capacity to have grown to fit 100 elements, got %d", s.capacity)
	}
	for i := 0; i < 99; i++ {
		s.Remove(i)
	}
	if s.capacity > minCapacity*2 {
		t.Errorf("Expected capacity to shrink back down after removing almost everything, got %d", s.capacity)
	}
	if !s.Contains(99) {
		t.Error("Expected the one remaining element to survive the shrink")
	}
}

func TestSliceAndEach(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")
	seen := map[string]bool{}
	s.Each(func(v string) { seen[v] = true })
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Errorf("Each visited %v, want {a, b}", seen)
	}
	if len(s.Slice()) != 2 {
		t.Errorf("Slice() len = %d, want 2", len(s.Slice()))
	}
}
