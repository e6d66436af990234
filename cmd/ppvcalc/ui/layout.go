// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for the calculator screen.
const (
	// Parameter rows
	LabelWidth     = 13 // longest label plus padding
	SliderWidth    = 30
	MinSliderWidth = 10
	EntryWidth     = 7 // "100.0" plus cursor
	RowGutter      = 2

	// Count cards
	CardWidth = 16

	// Responsive breakpoint: below this the four count cards wrap
	// into a 2x2 grid instead of a single row.
	WideLayoutWidth = 4*(CardWidth+2) + 8

	// Fallback terminal width before the first WindowSizeMsg arrives.
	DefaultWidth = 100
)

// CardsPerRow returns how many count cards fit on one row at the
// given terminal width: all four on a wide layout, two on a narrow
// one.
func CardsPerRow(terminalWidth int) int {
	if terminalWidth >= WideLayoutWidth {
		return 4
	}
	return 2
}

// FitSliderWidth returns the slider gauge width for a terminal of the
// given width, leaving room for the row's label and numeric entry.
func FitSliderWidth(terminalWidth int) int {
	w := terminalWidth - LabelWidth - EntryWidth - 4*RowGutter
	if w > SliderWidth {
		return SliderWidth
	}
	if w < MinSliderWidth {
		return MinSliderWidth
	}
	return w
}
