package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{0, 0, 0, 0},
		{3, 0, -1, 0}, // empty range collapses to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrapF(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{"inside", 275, 275},
		{"zero", 0, 0},
		{"exactly size", 600, 0},
		{"minus one", -1, 599},
		{"just past size", 601, 1},
		{"several laps", 1850, 50},
		{"several laps negative", -1250, 550},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapF(tc.val, 600); got != tc.expected {
				t.Errorf("WrapF(%v, 600) = %v, expected %v", tc.val, got, tc.expected)
			}
		})
	}
}

func TestWrapI(t *testing.T) {
	tests := []struct {
		val, size, expected int
	}{
		{0, 60, 0},
		{60, 60, 0},
		{-1, 60, 59},
		{125, 60, 5},
		{7, 0, 7}, // degenerate size leaves value alone
	}

	for _, tc := range tests {
		if got := WrapI(tc.val, tc.size); got != tc.expected {
			t.Errorf("WrapI(%d, %d) = %d, expected %d", tc.val, tc.size, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
