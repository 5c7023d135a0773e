package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := NewBounds(40, 20)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"center", Point{X: 20, Y: 10}, true},
		{"top-left interior corner", Point{X: 1, Y: 1}, true},
		{"bottom-right interior corner", Point{X: 39, Y: 19}, true},
		{"top border row", Point{X: 20, Y: 0}, false},
		{"left border column", Point{X: 0, Y: 10}, false},
		{"bottom border row", Point{X: 20, Y: 20}, false},
		{"right border column", Point{X: 40, Y: 10}, false},
		{"negative row", Point{X: 5, Y: -1}, false},
		{"past the border", Point{X: 41, Y: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestBoundsInteriorCells(t *testing.T) {
	tests := []struct {
		w, h     int
		expected int
	}{
		{40, 20, 39 * 19},
		{2, 2, 1},
		{1, 1, 0},
		{0, 0, 0},
	}

	for _, tc := range tests {
		b := NewBounds(tc.w, tc.h)
		if got := b.InteriorCells(); got != tc.expected {
			t.Errorf("InteriorCells() for %dx%d = %d, expected %d", tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 7}
	d := Point{X: -1, Y: 2}

	got := p.Add(d)
	if got != (Point{X: 2, Y: 9}) {
		t.Errorf("Add() = %v, expected {2 9}", got)
	}

	// Add must not mutate the receiver
	if p != (Point{X: 3, Y: 7}) {
		t.Errorf("Add mutated the receiver: %v", p)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
