package models

// Metrics holds one athlete's numbers for a single set. Nil means the field
// was never logged, which is distinct from an explicit zero.
type Metrics struct {
	Weight *float64 `json:"weight,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
}

// SetRecord is one logged set in canonical form. Records are produced only
// by normalization or submission and never mutated afterwards; the backing
// log is append-only.
type SetRecord struct {
	Date      LogDate            `json:"date"`
	Exercise  string             `json:"exercise"`
	SetNumber int                `json:"set_number"` // 1..4; 0 when the raw value did not parse
	Focus     FocusGroup         `json:"focus"`
	Metrics   map[string]Metrics `json:"metrics"` // keyed by athlete name
}

// HasSet reports whether the record carries a usable set number.
func (r SetRecord) HasSet() bool {
	return r.SetNumber >= 1 && r.SetNumber <= 4
}

// Volume is the training-load proxy for one set: weight × reps when both
// are present, 0 otherwise. Never negative for valid records.
func (r SetRecord) Volume(athlete string) float64 {
	m, ok := r.Metrics[athlete]
	if !ok || m.Weight == nil || m.Reps == nil {
		return 0
	}
	return *m.Weight * float64(*m.Reps)
}

// Float returns a pointer to v. Handy for building Metrics literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
