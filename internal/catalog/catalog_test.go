package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

type fakeGateway struct {
	rows    []storage.Row
	appends [][]string
	reads   int
}

func (g *fakeGateway) ReadAll(_ context.Context, _ string) ([]storage.Row, error) {
	g.reads++
	return g.rows, nil
}

func (g *fakeGateway) AppendRow(_ context.Context, _ string, values []string) error {
	g.appends = append(g.appends, values)
	g.rows = append(g.rows, storage.Row{
		models.ColFocus:    values[0],
		models.ColExercise: values[1],
	})
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func catalogRow(focus, exercise string) storage.Row {
	return storage.Row{models.ColFocus: focus, models.ColExercise: exercise}
}

// TestLoadFirstSeenOrder verifies grouping preserves insertion order inside
// each group (the first entry is the presentation layer's default pick) and
// collapses repeated pairs to their first occurrence.
func TestLoadFirstSeenOrder(t *testing.T) {
	gw := &fakeGateway{rows: []storage.Row{
		catalogRow("Chest", "Bench Press"),
		catalogRow("Legs", "Squat"),
		catalogRow("Chest", "Incline Press"),
		catalogRow("Chest", "Bench Press"), // duplicate, first wins
		catalogRow("Chest", "Cable Fly"),
	}}
	svc := NewService(gw, discardLogger())

	c, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chest := c.Exercises(models.FocusChest)
	want := []string{"Bench Press", "Incline Press", "Cable Fly"}
	if len(chest) != len(want) {
		t.Fatalf("chest = %v, want %v", chest, want)
	}
	for i := range want {
		if chest[i] != want[i] {
			t.Errorf("chest[%d] = %q, want %q", i, chest[i], want[i])
		}
	}

	legs := c.Exercises(models.FocusLegs)
	if len(legs) != 1 || legs[0] != "Squat" {
		t.Errorf("legs = %v", legs)
	}
	if got := c.Exercises(models.FocusBack); len(got) != 0 {
		t.Errorf("back = %v, want empty", got)
	}
}

// TestLoadCaches verifies a second load within the TTL serves from cache.
func TestLoadCaches(t *testing.T) {
	gw := &fakeGateway{rows: []storage.Row{catalogRow("Back", "Deadlift")}}
	svc := NewService(gw, discardLogger())
	ctx := context.Background()

	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.reads != 1 {
		t.Errorf("gateway reads = %d, want 1", gw.reads)
	}
}

// TestAddExerciseAppendsAndInvalidates verifies the append reaches the
// store in schema order and the next load sees it immediately, without
// waiting out the TTL.
func TestAddExerciseAppendsAndInvalidates(t *testing.T) {
	gw := &fakeGateway{rows: []storage.Row{catalogRow("Back", "Deadlift")}}
	svc := NewService(gw, discardLogger())
	ctx := context.Background()

	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.AddExercise(ctx, models.FocusBack, "  Barbell Row "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gw.appends) != 1 {
		t.Fatalf("appends = %d, want 1", len(gw.appends))
	}
	if gw.appends[0][0] != "Back" || gw.appends[0][1] != "Barbell Row" {
		t.Errorf("appended row = %v", gw.appends[0])
	}

	c, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := c.Exercises(models.FocusBack)
	if len(back) != 2 || back[1] != "Barbell Row" {
		t.Errorf("back after add = %v", back)
	}
}
