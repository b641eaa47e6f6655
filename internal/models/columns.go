package models

// Table names in the record store.
const (
	LogTable     = "WorkoutLog"
	CatalogTable = "Exercises"
)

// Fixed log columns; athlete metric columns are derived from the two
// configured athlete names.
const (
	ColDate     = "Date"
	ColExercise = "Exercise"
	ColSet      = "Set"
	ColFocus    = "Focus"
)

// RequiredLogColumns are the columns whose absence from the store schema is
// a structural defect (MalformedSourceError). Athlete metric columns are
// deliberately not required: a schema without them yields empty summaries,
// not a failed load.
var RequiredLogColumns = []string{ColDate, ColExercise, ColSet, ColFocus}

// WeightColumn returns the log column holding an athlete's weight.
func WeightColumn(athlete string) string { return athlete + "_Weight" }

// RepsColumn returns the log column holding an athlete's rep count.
func RepsColumn(athlete string) string { return athlete + "_Reps" }

// LogColumns is the order-significant header of the log table for two
// athletes.
func LogColumns(athlete1, athlete2 string) []string {
	return []string{
		ColDate, ColExercise, ColSet, ColFocus,
		WeightColumn(athlete1), RepsColumn(athlete1),
		WeightColumn(athlete2), RepsColumn(athlete2),
	}
}

// CatalogColumns is the order-significant header of the exercise catalog
// table.
func CatalogColumns() []string { return []string{ColFocus, ColExercise} }
