package models

import "fmt"

// SummaryMetric names one of the two per-set measurements.
type SummaryMetric string

const (
	MetricWeight SummaryMetric = "Weight"
	MetricReps   SummaryMetric = "Reps"
)

// ColumnKey identifies one column of a session summary: a set number paired
// with a metric. Only combinations actually observed in the source data
// become columns; the table shape is discovered, not assumed.
type ColumnKey struct {
	Set    int           `json:"set"`
	Metric SummaryMetric `json:"metric"`
}

// Label renders the column header the way the presentation layer shows it,
// e.g. "Set 2 Weight".
func (c ColumnKey) Label() string {
	return fmt.Sprintf("Set %d %s", c.Set, c.Metric)
}

// SummaryRow is one exercise's line in the wide table. Cells align with the
// summary's Columns; nil means "not logged", which is distinct from an
// explicit zero value.
type SummaryRow struct {
	Exercise string     `json:"exercise"`
	Cells    []*float64 `json:"cells"`
}

// SessionSummary is the wide last-session table for one athlete and focus
// group. Derived and ephemeral; rows are ordered by first occurrence in the
// source sequence, columns by set number then Weight before Reps.
type SessionSummary struct {
	Date    LogDate      `json:"date"`
	Columns []ColumnKey  `json:"columns"`
	Rows    []SummaryRow `json:"rows"`
}

// Empty reports whether the summary has no rows.
func (s SessionSummary) Empty() bool { return len(s.Rows) == 0 }
