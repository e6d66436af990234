package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

// Slider is a display-only horizontal gauge for a bounded continuous
// value. Key handling lives in the owning model; the slider only
// knows its range, its step, and how to draw itself.
type Slider struct {
	bar  progress.Model
	Min  float64
	Max  float64
	Step float64
}

// NewSlider creates a percentage slider over [0, 100] with a 0.1 step.
func NewSlider(theme Theme) Slider {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Accent)),
		progress.WithoutPercentage(),
	)
	bar.Width = SliderWidth
	return Slider{
		bar:  bar,
		Min:  0,
		Max:  100,
		Step: 0.1,
	}
}

// SetWidth resizes the gauge.
func (s *Slider) SetWidth(w int) {
	s.bar.Width = w
}

// View renders the gauge for value. Out-of-range and non-finite
// values clamp to the nearest end for drawing only; the numeric
// readout beside the gauge carries the true value.
func (s Slider) View(value float64) string {
	frac := (value - s.Min) / (s.Max - s.Min)
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return s.bar.ViewAs(frac)
}

// Increment returns value moved up one step, clamped to the range.
func (s Slider) Increment(value float64) float64 {
	return s.nudge(value, s.Step)
}

// Decrement returns value moved down one step, clamped to the range.
func (s Slider) Decrement(value float64) float64 {
	return s.nudge(value, -s.Step)
}

func (s Slider) nudge(value, delta float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		// Dragging from an undefined value snaps to the low end.
		return s.Min
	}
	v := value + delta
	// Snap to the step grid so repeated nudges accumulate no float
	// residue (89.9 + 0.1 must read back as 90.0, not 89.99999...).
	v = math.Round(v/s.Step) * s.Step
	v = math.Round(v*10) / 10
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}
