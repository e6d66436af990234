// Package bayes computes predictive values for a diagnostic test from
// its sensitivity and specificity and the disease prevalence, via
// Bayes' theorem.
package bayes

import "math"

// PPV returns P(disease | test positive).
//
// All inputs are fractions in [0, 1]; the range is a caller contract,
// not enforced here. When the denominator
// sens*prev + (1-spec)*(1-prev) is exactly zero the value is
// mathematically undefined and NaN is returned. NaN inputs propagate
// to a NaN result; finiteness is checked at render time, not here.
func PPV(sensitivity, specificity, prevalence float64) float64 {
	tp := sensitivity * prevalence
	fp := (1 - specificity) * (1 - prevalence)
	denom := tp + fp
	if denom == 0 {
		return math.NaN()
	}
	return tp / denom
}

// NPV returns P(no disease | test negative), the complement-side
// predictive value. Same conventions as PPV: fraction inputs, NaN on
// a zero denominator.
func NPV(sensitivity, specificity, prevalence float64) float64 {
	tn := specificity * (1 - prevalence)
	fn := (1 - sensitivity) * prevalence
	denom := tn + fn
	if denom == 0 {
		return math.NaN()
	}
	return tn / denom
}
