// Package population projects test characteristics onto a hypothetical
// population as confusion-matrix cell counts.
package population

import "math"

// DefaultSize is the population the interactive screen projects onto
// unless configured otherwise.
const DefaultSize = 10000

// Cells holds the four confusion-matrix counts for one population.
type Cells struct {
	TP int // diseased, test positive
	FP int // healthy, test positive
	TN int // healthy, test negative
	FN int // diseased, test negative
}

// Total returns the number of individuals across all four cells.
func (c Cells) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Project splits a population of n individuals into confusion cells.
// Inputs are fractions in [0, 1].
//
// Rounding is applied once per group (math.Round, half away from
// zero): the diseased group total and the "expected" cell of each
// group. The sibling cell is the exact complement, so TP+FN always
// equals round(n*prevalence), TN+FP always equals the remainder, and
// the four cells sum to n with no independent-rounding drift.
//
// Returns ok=false and the zero Cells when any parameter is not
// finite (e.g. NaN from free-form numeric entry); integer counts have
// no sentinel value to propagate.
func Project(sensitivity, specificity, prevalence float64, n int) (Cells, bool) {
	if !finite(sensitivity) || !finite(specificity) || !finite(prevalence) {
		return Cells{}, false
	}

	diseased := int(math.Round(float64(n) * prevalence))
	healthy := n - diseased

	tp := int(math.Round(float64(diseased) * sensitivity))
	tn := int(math.Round(float64(healthy) * specificity))

	return Cells{
		TP: tp,
		FN: diseased - tp,
		TN: tn,
		FP: healthy - tn,
	}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
