// Package analytics derives progression series from the canonical log. All
// functions are pure: no store access, no side effects, records in → values
// out.
package analytics

import (
	"iter"
	"sort"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// ExerciseSeries is one exercise's max-lift progression for an athlete:
// for each training date, the heaviest weight logged that day. Points are
// ordered by date ascending.
type ExerciseSeries struct {
	Exercise string      `json:"exercise"`
	Dates    []time.Time `json:"dates"`
	Weights  []float64   `json:"weights"`
}

// Points iterates (date, maxWeight) pairs. The sequence is finite and
// restartable: ranging over it twice yields the same points.
func (s ExerciseSeries) Points() iter.Seq2[time.Time, float64] {
	return func(yield func(time.Time, float64) bool) {
		for i := range s.Dates {
			if !yield(s.Dates[i], s.Weights[i]) {
				return
			}
		}
	}
}

// Len returns the number of points in the series.
func (s ExerciseSeries) Len() int { return len(s.Dates) }

// MaxLiftSeries builds one series per distinct exercise, in first-occurrence
// order. A date contributes a point only when the athlete logged at least
// one weight for that exercise that day; unparseable dates are skipped.
func MaxLiftSeries(records []models.SetRecord, athlete string) []ExerciseSeries {
	type dayKey struct {
		exercise string
		day      time.Time
	}

	maxByDay := make(map[dayKey]float64)
	var order []string
	seen := make(map[string]bool)

	for _, rec := range records {
		if !rec.Date.Parsed || rec.Exercise == "" {
			continue
		}
		m, ok := rec.Metrics[athlete]
		if !ok || m.Weight == nil {
			continue
		}
		if !seen[rec.Exercise] {
			seen[rec.Exercise] = true
			order = append(order, rec.Exercise)
		}
		key := dayKey{exercise: rec.Exercise, day: rec.Date.Time}
		if cur, ok := maxByDay[key]; !ok || *m.Weight > cur {
			maxByDay[key] = *m.Weight
		}
	}

	series := make([]ExerciseSeries, 0, len(order))
	for _, exercise := range order {
		var days []time.Time
		for key := range maxByDay {
			if key.exercise == exercise {
				days = append(days, key.day)
			}
		}
		if len(days) == 0 {
			continue
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

		s := ExerciseSeries{Exercise: exercise}
		for _, day := range days {
			s.Dates = append(s.Dates, day)
			s.Weights = append(s.Weights, maxByDay[dayKey{exercise: exercise, day: day}])
		}
		series = append(series, s)
	}
	return series
}

// WeeklyAggregates buckets records into Monday-start calendar weeks and
// totals the athlete's volume and distinct workout days per bucket, ordered
// ascending by week start. Records with an unparseable date are excluded.
func WeeklyAggregates(records []models.SetRecord, athlete string) []models.WeeklyAggregate {
	type bucket struct {
		volume float64
		days   map[time.Time]bool
	}

	buckets := make(map[time.Time]*bucket)
	for _, rec := range records {
		if !rec.Date.Parsed {
			continue
		}
		week := rec.Date.WeekStart()
		b, ok := buckets[week]
		if !ok {
			b = &bucket{days: make(map[time.Time]bool)}
			buckets[week] = b
		}
		b.volume += rec.Volume(athlete)
		b.days[rec.Date.Time] = true
	}

	weeks := make([]time.Time, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	result := make([]models.WeeklyAggregate, 0, len(weeks))
	for _, week := range weeks {
		b := buckets[week]
		result = append(result, models.WeeklyAggregate{
			WeekStart:           week,
			TotalVolume:         b.volume,
			DistinctWorkoutDays: len(b.days),
		})
	}
	return result
}
