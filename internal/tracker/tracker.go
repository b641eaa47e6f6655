// Package tracker wires the pipeline together: canonical log in, summaries
// and analytics out, submissions back through to the store. Both the HTTP
// handlers and the MCP tools sit on top of it.
package tracker

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/meltforce/liftlog/internal/analytics"
	"github.com/meltforce/liftlog/internal/catalog"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/submit"
	"github.com/meltforce/liftlog/internal/summary"
	"github.com/meltforce/liftlog/internal/workoutlog"
)

// Tracker is the application core behind every surface.
type Tracker struct {
	logsvc   *workoutlog.Service
	catalog  *catalog.Service
	pipeline *submit.Pipeline
	athletes []string
}

// New assembles the full pipeline on top of a record store gateway.
func New(gw storage.Gateway, athletes []string, log *slog.Logger) *Tracker {
	logsvc := workoutlog.NewService(gw, athletes, log)
	return &Tracker{
		logsvc:   logsvc,
		catalog:  catalog.NewService(gw, log),
		pipeline: submit.NewPipeline(gw, logsvc, athletes, log),
		athletes: athletes,
	}
}

// Athletes returns the configured athlete names.
func (t *Tracker) Athletes() []string { return t.athletes }

// KnownAthlete reports whether a name matches a configured athlete.
func (t *Tracker) KnownAthlete(name string) bool {
	for _, a := range t.athletes {
		if a == name {
			return true
		}
	}
	return false
}

// Records exposes the canonical record sequence.
func (t *Tracker) Records(ctx context.Context) ([]models.SetRecord, error) {
	return t.logsvc.Records(ctx)
}

// Summary builds the last-session table for a focus group and athlete.
func (t *Tracker) Summary(ctx context.Context, focus models.FocusGroup, athlete string) (models.SessionSummary, error) {
	records, err := t.logsvc.Records(ctx)
	if err != nil {
		return models.SessionSummary{}, err
	}
	return summary.Summarize(records, focus, athlete), nil
}

// WeeklyAggregates returns Monday-start week totals for an athlete.
func (t *Tracker) WeeklyAggregates(ctx context.Context, athlete string) ([]models.WeeklyAggregate, error) {
	records, err := t.logsvc.Records(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyAggregates(records, athlete), nil
}

// MaxLifts returns per-exercise progression series for an athlete,
// optionally narrowed by a case-insensitive partial exercise match.
func (t *Tracker) MaxLifts(ctx context.Context, athlete, exerciseFilter string) ([]analytics.ExerciseSeries, error) {
	records, err := t.logsvc.Records(ctx)
	if err != nil {
		return nil, err
	}
	series := analytics.MaxLiftSeries(records, athlete)
	if exerciseFilter == "" {
		return series, nil
	}
	filter := strings.ToLower(exerciseFilter)
	var matched []analytics.ExerciseSeries
	for _, s := range series {
		if strings.Contains(strings.ToLower(s.Exercise), filter) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// Catalog loads the exercise catalog.
func (t *Tracker) Catalog(ctx context.Context) (catalog.Catalog, error) {
	return t.catalog.Load(ctx)
}

// AddExercise appends a new exercise to the catalog.
func (t *Tracker) AddExercise(ctx context.Context, focus models.FocusGroup, exercise string) error {
	return t.catalog.AddExercise(ctx, focus, exercise)
}

// Submit runs the submission pipeline for one form submission.
func (t *Tracker) Submit(ctx context.Context, date time.Time, exercise string, focus models.FocusGroup, slots [submit.MaxSlots]submit.Slot) (*models.Submission, error) {
	return t.pipeline.Submit(ctx, date, exercise, focus, slots)
}
