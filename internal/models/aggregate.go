package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyAggregate is one calendar week's totals for an athlete. WeekStart
// is always a Monday.
type WeeklyAggregate struct {
	WeekStart           time.Time `json:"week_start"`
	TotalVolume         float64   `json:"total_volume"`
	DistinctWorkoutDays int       `json:"distinct_workout_days"`
}

// Submission is the outcome of one submit call. Rows counts appends that
// actually committed; when Err is set, slots after the failing one were
// never attempted but the committed rows stay committed.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Rows      int       `json:"rows"`
	ClearForm bool      `json:"clear_form"` // caller should drop transient input state
	Err       error     `json:"-"`
}
