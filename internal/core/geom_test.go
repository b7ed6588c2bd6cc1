package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false}, // right edge is exclusive
		{2, 8, false}, // bottom edge is exclusive
		{1, 4, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 20, 5)
	if r != NewRect(30, 9, 20, 5) {
		t.Errorf("CenteredRect = %+v", r)
	}
	if r.Right() != 50 || r.Bottom() != 14 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1); got != tc.expected {
			t.Errorf("ClampF(%v) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorIce, "153"},
		{Color(200), ""},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
