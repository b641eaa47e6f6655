package summary

import (
	"reflect"
	"testing"

	"github.com/meltforce/liftlog/internal/models"
)

func rec(date, exercise string, set int, focus models.FocusGroup, metrics map[string]models.Metrics) models.SetRecord {
	return models.SetRecord{
		Date:      models.ParseLogDate(date),
		Exercise:  exercise,
		SetNumber: set,
		Focus:     focus,
		Metrics:   metrics,
	}
}

func both(nw float64, nr int, vw float64, vr int) map[string]models.Metrics {
	return map[string]models.Metrics{
		"Ninaad":  {Weight: models.Float(nw), Reps: models.Int(nr)},
		"Vasanta": {Weight: models.Float(vw), Reps: models.Int(vr)},
	}
}

func cell(v float64) *float64 { return &v }

// TestSummarizeLastSession covers the canonical two-set bench session:
// one row, four filled columns for the requested athlete.
func TestSummarizeLastSession(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(60, 8, 50, 10)),
		rec("2024-06-03", "Bench Press", 2, models.FocusChest, both(65, 6, 55, 8)),
	}

	sum := Summarize(records, models.FocusChest, "Ninaad")
	if sum.Empty() {
		t.Fatal("expected non-empty summary")
	}
	if sum.Date.String() != "2024-06-03" {
		t.Errorf("date = %s", sum.Date)
	}
	if len(sum.Rows) != 1 || sum.Rows[0].Exercise != "Bench Press" {
		t.Fatalf("rows = %+v", sum.Rows)
	}

	wantColumns := []models.ColumnKey{
		{Set: 1, Metric: models.MetricWeight},
		{Set: 1, Metric: models.MetricReps},
		{Set: 2, Metric: models.MetricWeight},
		{Set: 2, Metric: models.MetricReps},
	}
	if !reflect.DeepEqual(sum.Columns, wantColumns) {
		t.Fatalf("columns = %+v, want %+v", sum.Columns, wantColumns)
	}

	want := []*float64{cell(60), cell(8), cell(65), cell(6)}
	for i, c := range sum.Rows[0].Cells {
		if c == nil || *c != *want[i] {
			t.Errorf("cell %s = %v, want %v", sum.Columns[i].Label(), c, *want[i])
		}
	}
}

// TestSummarizeOnlyMaxDate verifies exercises logged only before the most
// recent session never produce a row.
func TestSummarizeOnlyMaxDate(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-05-27", "Incline Press", 1, models.FocusChest, both(40, 10, 35, 10)),
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(60, 8, 50, 10)),
	}

	sum := Summarize(records, models.FocusChest, "Ninaad")
	if len(sum.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(sum.Rows))
	}
	if sum.Rows[0].Exercise != "Bench Press" {
		t.Errorf("row = %q, want Bench Press only", sum.Rows[0].Exercise)
	}
}

// TestSummarizeDuplicateFirstWins verifies repeated (exercise, set) entries
// on the session date keep the first-encountered values.
func TestSummarizeDuplicateFirstWins(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(60, 8, 50, 10)),
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(99, 1, 99, 1)),
	}

	sum := Summarize(records, models.FocusChest, "Ninaad")
	if got := sum.Rows[0].Cells[0]; got == nil || *got != 60 {
		t.Errorf("set 1 weight = %v, want 60 (first occurrence)", got)
	}
}

// TestSummarizeObservedSetsOnly verifies the column set comes from the
// data, not a fixed 1..4 range, and unfilled cells stay nil instead of
// becoming zeros.
func TestSummarizeObservedSetsOnly(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-06-03", "Bench Press", 2, models.FocusChest, both(65, 6, 55, 8)),
		rec("2024-06-03", "Cable Fly", 4, models.FocusChest, both(20, 12, 15, 12)),
	}

	sum := Summarize(records, models.FocusChest, "Ninaad")
	wantColumns := []models.ColumnKey{
		{Set: 2, Metric: models.MetricWeight},
		{Set: 2, Metric: models.MetricReps},
		{Set: 4, Metric: models.MetricWeight},
		{Set: 4, Metric: models.MetricReps},
	}
	if !reflect.DeepEqual(sum.Columns, wantColumns) {
		t.Fatalf("columns = %+v, want %+v", sum.Columns, wantColumns)
	}

	// Cable Fly has no set 2: those cells must be unfilled.
	var flyRow models.SummaryRow
	for _, r := range sum.Rows {
		if r.Exercise == "Cable Fly" {
			flyRow = r
		}
	}
	if flyRow.Cells[0] != nil || flyRow.Cells[1] != nil {
		t.Errorf("Cable Fly set 2 cells should be nil, got %v %v", flyRow.Cells[0], flyRow.Cells[1])
	}
	if flyRow.Cells[2] == nil || *flyRow.Cells[2] != 20 {
		t.Errorf("Cable Fly set 4 weight = %v, want 20", flyRow.Cells[2])
	}
}

// TestSummarizeZeroIsLogged verifies an explicit zero fills its cell: zero
// is data, absence is not.
func TestSummarizeZeroIsLogged(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-06-03", "Hanging Leg Raise", 1, models.FocusChest, map[string]models.Metrics{
			"Ninaad": {Weight: models.Float(0), Reps: models.Int(12)},
		}),
	}

	sum := Summarize(records, models.FocusChest, "Ninaad")
	if got := sum.Rows[0].Cells[0]; got == nil || *got != 0 {
		t.Errorf("zero weight cell = %v, want explicit 0", got)
	}
}

// TestSummarizeUnparsedDatesExcluded verifies sentinel-dated records never
// participate: not in the max-date pick and not in the table.
func TestSummarizeUnparsedDatesExcluded(t *testing.T) {
	records := []models.SetRecord{
		rec("garbage", "Bench Press", 1, models.FocusChest, both(99, 9, 99, 9)),
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(60, 8, 50, 10)),
	}

	sum := Summarize(records, models.FocusChest, "Ninaad")
	if len(sum.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(sum.Rows))
	}
	if got := sum.Rows[0].Cells[0]; got == nil || *got != 60 {
		t.Errorf("set 1 weight = %v, want 60 from the dated record", got)
	}

	onlyUnparsed := []models.SetRecord{
		rec("garbage", "Bench Press", 1, models.FocusChest, both(99, 9, 99, 9)),
	}
	if sum := Summarize(onlyUnparsed, models.FocusChest, "Ninaad"); !sum.Empty() {
		t.Error("summary over only-unparsed dates should be empty")
	}
}

// TestSummarizeEmptyCases verifies the empty-result contract: no matching
// focus, no records, or an athlete the schema never tracked.
func TestSummarizeEmptyCases(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(60, 8, 50, 10)),
	}

	if sum := Summarize(nil, models.FocusChest, "Ninaad"); !sum.Empty() {
		t.Error("summary over no records should be empty")
	}
	if sum := Summarize(records, models.FocusLegs, "Ninaad"); !sum.Empty() {
		t.Error("summary for unmatched focus should be empty")
	}
	if sum := Summarize(records, models.FocusChest, "Nobody"); !sum.Empty() {
		t.Error("summary for untracked athlete should be empty, not a table of blanks")
	}
}

// TestSummarizeIdempotent verifies repeated calls on unchanged input
// produce identical tables.
func TestSummarizeIdempotent(t *testing.T) {
	records := []models.SetRecord{
		rec("2024-06-03", "Bench Press", 1, models.FocusChest, both(60, 8, 50, 10)),
		rec("2024-06-03", "Bench Press", 2, models.FocusChest, both(65, 6, 55, 8)),
	}

	first := Summarize(records, models.FocusChest, "Ninaad")
	second := Summarize(records, models.FocusChest, "Ninaad")
	if !reflect.DeepEqual(first, second) {
		t.Error("summaries differ across calls on unchanged input")
	}
}
