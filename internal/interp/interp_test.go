package interp

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, u  float64
		expected float64
	}{
		{0, 10, 0.5, 5},
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{-5, 5, 0.5, 0},
		{2, 2, 0.7, 2},
	}

	for _, tt := range tests {
		got := Lerp(tt.a, tt.b, tt.u)
		if math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.u, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0.05, 100); got != 100 {
		t.Errorf("Expected 100, got %v", got)
	}
	if got := Clamp(0.01, 0.05, 100); got != 0.05 {
		t.Errorf("Expected 0.05, got %v", got)
	}
	if got := Clamp(2, 0.05, 100); got != 2 {
		t.Errorf("Expected 2, got %v", got)
	}
}

func TestSpan(t *testing.T) {
	if got := Span(5, 0, 10); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	if got := Span(2, 2, 8); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}

	// Zero-width interval must not divide by zero
	got := Span(3, 3, 3)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("Span on zero-width interval returned %v", got)
	}
}
