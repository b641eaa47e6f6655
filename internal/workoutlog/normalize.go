package workoutlog

import (
	"strconv"
	"strings"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

// Normalize turns raw store rows into canonical set records, in input order.
// Per-row data problems degrade locally: an unparseable date becomes the
// Unparsed sentinel, an unparseable or out-of-range set number becomes 0,
// and an unparseable metric field is treated as not logged. The only fatal
// condition is a required column missing from the schema itself.
func Normalize(rows []storage.Row, athletes []string) ([]models.SetRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	schema := trimKeys(rows[0])
	for _, col := range models.RequiredLogColumns {
		if _, ok := schema[col]; !ok {
			return nil, &models.MalformedSourceError{Table: models.LogTable, Column: col}
		}
	}

	// An athlete participates only if at least one of their metric columns
	// exists in the schema. Athletes without columns are left out of the
	// metrics map entirely so downstream code can tell "never tracked"
	// from "tracked but blank".
	tracked := make([]string, 0, len(athletes))
	for _, a := range athletes {
		_, hasWeight := schema[models.WeightColumn(a)]
		_, hasReps := schema[models.RepsColumn(a)]
		if hasWeight || hasReps {
			tracked = append(tracked, a)
		}
	}

	records := make([]models.SetRecord, 0, len(rows))
	for _, raw := range rows {
		row := trimKeys(raw)

		rec := models.SetRecord{
			Date:      models.ParseLogDate(strings.TrimSpace(row[models.ColDate])),
			Exercise:  strings.TrimSpace(row[models.ColExercise]),
			SetNumber: parseSetNumber(row[models.ColSet]),
			Focus:     parseFocus(row[models.ColFocus]),
			Metrics:   make(map[string]models.Metrics, len(tracked)),
		}

		for _, a := range tracked {
			rec.Metrics[a] = models.Metrics{
				Weight: parseWeight(row[models.WeightColumn(a)]),
				Reps:   parseReps(row[models.RepsColumn(a)]),
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

// trimKeys rebuilds a row with whitespace-trimmed column names. Sheets edited
// by hand grow padded headers.
func trimKeys(row storage.Row) storage.Row {
	out := make(storage.Row, len(row))
	for k, v := range row {
		out[strings.TrimSpace(k)] = v
	}
	return out
}

// parseFocus canonicalizes known groups; an unknown value is kept verbatim
// so the record survives, it just never matches a requested group.
func parseFocus(s string) models.FocusGroup {
	if fg, err := models.ParseFocusGroup(s); err == nil {
		return fg
	}
	return models.FocusGroup(strings.TrimSpace(s))
}

// parseSetNumber returns 0 for anything that is not an integer in 1..4.
func parseSetNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 4 {
		return 0
	}
	return n
}

// parseWeight reads a weight field. Empty or unreadable values mean "not
// logged"; negative values are data errors and treated the same way.
// Handles European decimal commas ("62,5").
func parseWeight(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

// parseReps reads a rep-count field, tolerating float renderings like "8.0"
// that spreadsheets produce.
func parseReps(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return nil
		}
		return &n
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f < 0 || f != float64(int(f)) {
		return nil
	}
	n := int(f)
	return &n
}
