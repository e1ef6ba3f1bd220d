package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 10, 10, true},
		{"top-left corner", 5, 5, true},
		{"bottom-right inside", 14, 14, true},
		{"right edge (exclusive)", 15, 10, false},
		{"bottom edge (exclusive)", 10, 15, false},
		{"left of rect", 4, 10, false},
		{"above rect", 10, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 40, 6)
	if r.X != 20 || r.Y != 9 {
		t.Errorf("CenteredRect() at (%d, %d), expected (20, 9)", r.X, r.Y)
	}
	if r.Right() != 60 || r.Bottom() != 15 {
		t.Errorf("CenteredRect() ends at (%d, %d), expected (60, 15)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
