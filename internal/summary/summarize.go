// Package summary derives the "last session" wide table: for one focus
// group and one athlete, every set of the most recent recorded session.
package summary

import (
	"sort"

	"github.com/meltforce/liftlog/internal/models"
)

type groupKey struct {
	exercise string
	set      int
}

// Summarize builds the last-session table for a focus group and athlete.
// Pure and idempotent: same input, same table.
//
// Records with an unparseable date never participate: they cannot win the
// max-date comparison and are excluded from the table. Duplicate
// (exercise, set) entries on the session date resolve first-occurrence-wins;
// the duplicates stay in the canonical log but do not pivot. Cells are
// filled only from observed data: zero is a logged value, absence is nil.
func Summarize(records []models.SetRecord, focus models.FocusGroup, athlete string) models.SessionSummary {
	var filtered []models.SetRecord
	athleteTracked := false
	for _, rec := range records {
		if rec.Focus != focus {
			continue
		}
		filtered = append(filtered, rec)
		if _, ok := rec.Metrics[athlete]; ok {
			athleteTracked = true
		}
	}
	if len(filtered) == 0 || !athleteTracked {
		return models.SessionSummary{}
	}

	var maxDate models.LogDate
	for _, rec := range filtered {
		if rec.Date.Parsed && maxDate.Before(rec.Date) {
			maxDate = rec.Date
		}
	}
	if !maxDate.Parsed {
		return models.SessionSummary{}
	}

	// Restrict to the session date and resolve duplicates. Records whose
	// set number did not parse have no column to land in.
	groups := make(map[groupKey]models.SetRecord)
	var rowOrder []string
	rowSeen := make(map[string]bool)
	setSeen := make(map[int]bool)
	for _, rec := range filtered {
		if !rec.Date.Equal(maxDate) || !rec.HasSet() {
			continue
		}
		key := groupKey{exercise: rec.Exercise, set: rec.SetNumber}
		if _, dup := groups[key]; dup {
			continue
		}
		groups[key] = rec
		if !rowSeen[rec.Exercise] {
			rowSeen[rec.Exercise] = true
			rowOrder = append(rowOrder, rec.Exercise)
		}
		setSeen[rec.SetNumber] = true
	}
	if len(groups) == 0 {
		return models.SessionSummary{}
	}

	sets := make([]int, 0, len(setSeen))
	for n := range setSeen {
		sets = append(sets, n)
	}
	sort.Ints(sets)

	columns := make([]models.ColumnKey, 0, len(sets)*2)
	for _, n := range sets {
		columns = append(columns,
			models.ColumnKey{Set: n, Metric: models.MetricWeight},
			models.ColumnKey{Set: n, Metric: models.MetricReps},
		)
	}

	rows := make([]models.SummaryRow, 0, len(rowOrder))
	for _, exercise := range rowOrder {
		row := models.SummaryRow{Exercise: exercise, Cells: make([]*float64, len(columns))}
		for i, col := range columns {
			rec, ok := groups[groupKey{exercise: exercise, set: col.Set}]
			if !ok {
				continue
			}
			m, ok := rec.Metrics[athlete]
			if !ok {
				continue
			}
			switch col.Metric {
			case models.MetricWeight:
				if m.Weight != nil {
					v := *m.Weight
					row.Cells[i] = &v
				}
			case models.MetricReps:
				if m.Reps != nil {
					v := float64(*m.Reps)
					row.Cells[i] = &v
				}
			}
		}
		rows = append(rows, row)
	}

	return models.SessionSummary{Date: maxDate, Columns: columns, Rows: rows}
}
