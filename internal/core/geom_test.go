package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 20, 22) // a bordered 10x20 well

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"last cell", 21, 24, true},
		{"right edge is exclusive", 22, 10, false},
		{"bottom edge is exclusive", 10, 25, false},
		{"left of rect", 1, 10, false},
		{"above rect", 10, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(4, 2, 22, 22).Inset(1)
	if want := NewRect(5, 3, 20, 20); got != want {
		t.Errorf("Inset(1) = %+v, expected %+v", got, want)
	}

	if got := NewRect(0, 0, 1, 3).Inset(1); got.W != 0 || got.H != 1 {
		t.Errorf("Inset on a thin rect = %+v, expected zero width", got)
	}
}

func TestRectCenter(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	got := screen.Center(44, 22)
	if want := NewRect(18, 1, 44, 22); got != want {
		t.Errorf("Center = %+v, expected %+v", got, want)
	}

	got = NewRect(0, 0, 30, 10).Center(44, 22)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("oversized Center = %+v, expected pinned to origin", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{2, 0, 4, 2},
		{-1, 0, 4, 0},
		{7, 0, 4, 4},
		{4, 0, 4, 4},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
