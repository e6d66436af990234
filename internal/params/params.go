// Package params holds the three user-adjustable test parameters.
//
// Values are stored as percentages (the user-facing unit) and derived
// as fractions on read, so the percentage is the single source of
// truth and the two representations cannot drift apart.
package params

import "fmt"

// Default parameter values shown when the screen first opens.
const (
	DefaultSensitivity = 90.0
	DefaultSpecificity = 95.0
	DefaultPrevalence  = 5.0
)

// Field names one of the three parameters.
type Field int

const (
	Sensitivity Field = iota
	Specificity
	Prevalence

	// FieldCount is the number of parameter fields, for UI iteration.
	FieldCount
)

// Label returns the display name of the field.
func (f Field) Label() string {
	switch f {
	case Sensitivity:
		return "Sensitivity"
	case Specificity:
		return "Specificity"
	case Prevalence:
		return "Prevalence"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Store owns the three percentages that drive every derived value.
// Setters do not clamp or validate: out-of-range or NaN direct entry
// passes through unmodified and surfaces as "n/a" downstream.
// The store is owned by a single screen and never shared, so it
// carries no locking.
type Store struct {
	values [FieldCount]float64
}

// NewStore returns a store primed with the default parameters.
func NewStore() *Store {
	var s Store
	s.values[Sensitivity] = DefaultSensitivity
	s.values[Specificity] = DefaultSpecificity
	s.values[Prevalence] = DefaultPrevalence
	return &s
}

// Get returns the stored percentage for f, bit-for-bit as last set.
func (s *Store) Get(f Field) float64 {
	return s.values[f]
}

// Set stores pct as the new percentage for f.
func (s *Store) Set(f Field, pct float64) {
	s.values[f] = pct
}

// Fractions returns all three parameters as fractions in [0, 1]
// (percentage / 100), the unit the evaluator and projector consume.
func (s *Store) Fractions() (sensitivity, specificity, prevalence float64) {
	return s.values[Sensitivity] / 100,
		s.values[Specificity] / 100,
		s.values[Prevalence] / 100
}
