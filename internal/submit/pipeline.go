// Package submit turns form input into qualifying set records and appends
// them to the record store.
package submit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

// MaxSlots is the number of set slots one submission carries.
const MaxSlots = 4

// Slot is one set's raw input: up to four optional numbers, two athletes ×
// weight/reps. Nil means the field was left blank.
type Slot struct {
	Metrics map[string]models.Metrics `json:"metrics"`
}

// qualifies reports whether the slot carries data worth logging. The policy
// is strictly-positive: a field counts only when it is supplied and greater
// than zero. An explicit 0 means "I didn't do this set", not "log a
// zero-weight set", so skipped slots never become rows.
func (s Slot) qualifies(athletes []string) bool {
	for _, a := range athletes {
		m, ok := s.Metrics[a]
		if !ok {
			continue
		}
		if m.Weight != nil && *m.Weight > 0 {
			return true
		}
		if m.Reps != nil && *m.Reps > 0 {
			return true
		}
	}
	return false
}

// Invalidator drops a cached canonical log after a write.
type Invalidator interface {
	Invalidate()
}

// Pipeline appends qualifying slots to the store, one row per slot.
type Pipeline struct {
	gw       storage.Gateway
	inv      Invalidator
	athletes []string
	log      *slog.Logger
}

// NewPipeline creates a submission pipeline for the given athletes.
func NewPipeline(gw storage.Gateway, inv Invalidator, athletes []string, log *slog.Logger) *Pipeline {
	return &Pipeline{gw: gw, inv: inv, athletes: athletes, log: log}
}

// Submit logs the qualifying slots of one form submission in ascending set
// order, one store append per slot. There is no cross-slot transaction: on
// a failed append, earlier rows stay committed, later slots are not
// attempted, and the result reports how many rows made it alongside the
// error. Any committed row invalidates the cached log and signals the
// caller to clear the form.
func (p *Pipeline) Submit(ctx context.Context, date time.Time, exercise string, focus models.FocusGroup, slots [MaxSlots]Slot) (*models.Submission, error) {
	sub := &models.Submission{ID: uuid.New()}

	for i, slot := range slots {
		if !slot.qualifies(p.athletes) {
			continue
		}
		setNumber := i + 1
		row := p.buildRow(date, exercise, focus, setNumber, slot)
		if err := p.gw.AppendRow(ctx, models.LogTable, row); err != nil {
			sub.Err = err
			p.log.Error("append failed mid-submission",
				"submission", sub.ID, "set", setNumber, "committed", sub.Rows, "error", err)
			break
		}
		sub.Rows++
	}

	if sub.Rows > 0 {
		p.inv.Invalidate()
		sub.ClearForm = true
		p.log.Info("sets logged",
			"submission", sub.ID, "exercise", exercise, "focus", focus, "rows", sub.Rows)
	}
	return sub, sub.Err
}

// buildRow renders one slot into the order-significant log schema. Fields
// absent from a qualifying slot default to zero.
func (p *Pipeline) buildRow(date time.Time, exercise string, focus models.FocusGroup, setNumber int, slot Slot) []string {
	row := []string{
		date.Format("2006-01-02"),
		exercise,
		strconv.Itoa(setNumber),
		string(focus),
	}
	for _, a := range p.athletes {
		m := slot.Metrics[a]
		weight, reps := 0.0, 0
		if m.Weight != nil {
			weight = *m.Weight
		}
		if m.Reps != nil {
			reps = *m.Reps
		}
		row = append(row, strconv.FormatFloat(weight, 'f', -1, 64), strconv.Itoa(reps))
	}
	return row
}
