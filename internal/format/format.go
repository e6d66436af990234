// Package format implements the display formatting contract for the
// calculator: percentages at fixed precision and locale-grouped
// counts. Finiteness is checked here, at final render, so non-finite
// values can flow through the whole computation first and only the
// formatter decides between a number and the "n/a" marker.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotApplicable is rendered wherever a derived value has no defined
// numeric result.
const NotApplicable = "n/a"

var printer = message.NewPrinter(language.English)

// Percent2 formats a fraction in [0, 1] as a percentage with exactly
// two decimals ("48.65%"), or NotApplicable for non-finite input.
func Percent2(frac float64) string {
	if !isFinite(frac) {
		return NotApplicable
	}
	return fmt.Sprintf("%.2f%%", frac*100)
}

// Percent1 formats a raw percentage value with exactly one decimal
// ("90.0"), or NotApplicable for non-finite input. Used for the
// parameter readouts, which are already in percent.
func Percent1(pct float64) string {
	if !isFinite(pct) {
		return NotApplicable
	}
	return fmt.Sprintf("%.1f", pct)
}

// Count renders an integer with digit grouping ("12,345").
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
