package ui

import (
	"math"
	"testing"
)

func TestSliderNudge(t *testing.T) {
	s := NewSlider(LightTheme())

	if got := s.Increment(89.9); got != 90.0 {
		t.Errorf("Increment(89.9) = %v, want 90.0", got)
	}
	if got := s.Decrement(90.0); got != 89.9 {
		t.Errorf("Decrement(90.0) = %v, want 89.9", got)
	}

	// Repeated steps must stay on the 0.1 grid.
	v := 5.0
	for i := 0; i < 10; i++ {
		v = s.Increment(v)
	}
	if v != 6.0 {
		t.Errorf("ten increments from 5.0 = %v, want 6.0", v)
	}
}

func TestSliderClamps(t *testing.T) {
	s := NewSlider(LightTheme())

	if got := s.Increment(100.0); got != 100.0 {
		t.Errorf("Increment(100.0) = %v, want 100.0", got)
	}
	if got := s.Decrement(0.0); got != 0.0 {
		t.Errorf("Decrement(0.0) = %v, want 0.0", got)
	}
}

func TestSliderNudgeFromNaN(t *testing.T) {
	s := NewSlider(LightTheme())

	if got := s.Increment(math.NaN()); got != 0.0 {
		t.Errorf("Increment(NaN) = %v, want 0.0", got)
	}
	if got := s.Decrement(math.Inf(1)); got != 0.0 {
		t.Errorf("Decrement(+Inf) = %v, want 0.0", got)
	}
}

func TestSliderViewDoesNotPanic(t *testing.T) {
	s := NewSlider(LightTheme())

	for _, v := range []float64{0, 50, 100, -10, 250, math.NaN(), math.Inf(-1)} {
		if view := s.View(v); view == "" {
			t.Errorf("View(%v) returned empty string", v)
		}
	}
}
