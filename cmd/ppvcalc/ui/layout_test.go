package ui

import "testing"

func TestCardsPerRow(t *testing.T) {
	if got := CardsPerRow(200); got != 4 {
		t.Errorf("CardsPerRow(200) = %d, want 4", got)
	}
	if got := CardsPerRow(60); got != 2 {
		t.Errorf("CardsPerRow(60) = %d, want 2", got)
	}
}

func TestFitSliderWidth(t *testing.T) {
	if got := FitSliderWidth(200); got != SliderWidth {
		t.Errorf("FitSliderWidth(200) = %d, want %d", got, SliderWidth)
	}
	if got := FitSliderWidth(48); got >= SliderWidth {
		t.Errorf("FitSliderWidth(48) = %d, want narrower than %d", got, SliderWidth)
	}
	if got := FitSliderWidth(0); got != MinSliderWidth {
		t.Errorf("FitSliderWidth(0) = %d, want floor %d", got, MinSliderWidth)
	}
}
