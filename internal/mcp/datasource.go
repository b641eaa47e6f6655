package mcp

import (
	"context"

	"github.com/meltforce/liftlog/internal/analytics"
	"github.com/meltforce/liftlog/internal/catalog"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/tracker"
)

// DataSource abstracts the pipeline for MCP tools. *tracker.Tracker
// satisfies it.
type DataSource interface {
	Athletes() []string
	KnownAthlete(name string) bool
	Summary(ctx context.Context, focus models.FocusGroup, athlete string) (models.SessionSummary, error)
	WeeklyAggregates(ctx context.Context, athlete string) ([]models.WeeklyAggregate, error)
	MaxLifts(ctx context.Context, athlete, exerciseFilter string) ([]analytics.ExerciseSeries, error)
	Catalog(ctx context.Context) (catalog.Catalog, error)
}

// Compile-time check: *tracker.Tracker satisfies DataSource.
var _ DataSource = (*tracker.Tracker)(nil)
