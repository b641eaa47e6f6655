package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/meltforce/liftlog/internal/analytics"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/submit"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAthletes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"athletes": s.tracker.Athletes()})
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	focus, err := models.ParseFocusGroup(r.URL.Query().Get("focus"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	c, err := s.tracker.Catalog(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	exercises := c.Exercises(focus)
	if exercises == nil {
		exercises = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"focus":     focus,
		"exercises": exercises,
	})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Focus    string `json:"focus"`
		Exercise string `json:"exercise"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	focus, err := models.ParseFocusGroup(req.Focus)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Exercise) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise is required"})
		return
	}

	if err := s.tracker.AddExercise(r.Context(), focus, req.Exercise); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"focus":    focus,
		"exercise": strings.TrimSpace(req.Exercise),
	})
}

// athleteParam validates the athlete query parameter against the configured
// names. The log schema only carries columns for configured athletes.
func (s *Server) athleteParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	athlete := r.URL.Query().Get("athlete")
	if !s.tracker.KnownAthlete(athlete) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown athlete " + athlete})
		return "", false
	}
	return athlete, true
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	focus, err := models.ParseFocusGroup(r.URL.Query().Get("focus"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	athlete, ok := s.athleteParam(w, r)
	if !ok {
		return
	}

	sum, err := s.tracker.Summary(r.Context(), focus, athlete)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// An empty result is a 200 with empty arrays, never null.
	if sum.Columns == nil {
		sum.Columns = []models.ColumnKey{}
	}
	if sum.Rows == nil {
		sum.Rows = []models.SummaryRow{}
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleMaxLifts(w http.ResponseWriter, r *http.Request) {
	athlete, ok := s.athleteParam(w, r)
	if !ok {
		return
	}

	series, err := s.tracker.MaxLifts(r.Context(), athlete, r.URL.Query().Get("exercise"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if series == nil {
		series = []analytics.ExerciseSeries{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"athlete": athlete, "series": series})
}

func (s *Server) handleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	athlete, ok := s.athleteParam(w, r)
	if !ok {
		return
	}

	aggs, err := s.tracker.WeeklyAggregates(r.Context(), athlete)
	if err != nil {
		s.writeError(w, err)
		return
	}

	type point struct {
		WeekStart   time.Time `json:"week_start"`
		TotalVolume float64   `json:"total_volume"`
	}
	points := make([]point, 0, len(aggs))
	for _, a := range aggs {
		points = append(points, point{WeekStart: a.WeekStart, TotalVolume: a.TotalVolume})
	}
	writeJSON(w, http.StatusOK, map[string]any{"athlete": athlete, "weeks": points})
}

func (s *Server) handleWeeklyFrequency(w http.ResponseWriter, r *http.Request) {
	athlete, ok := s.athleteParam(w, r)
	if !ok {
		return
	}

	aggs, err := s.tracker.WeeklyAggregates(r.Context(), athlete)
	if err != nil {
		s.writeError(w, err)
		return
	}

	type point struct {
		WeekStart time.Time `json:"week_start"`
		Days      int       `json:"distinct_workout_days"`
	}
	points := make([]point, 0, len(aggs))
	for _, a := range aggs {
		points = append(points, point{WeekStart: a.WeekStart, Days: a.DistinctWorkoutDays})
	}
	writeJSON(w, http.StatusOK, map[string]any{"athlete": athlete, "weeks": points})
}

type submitRequest struct {
	Date     string                       `json:"date"`
	Exercise string                       `json:"exercise"`
	Focus    string                       `json:"focus"`
	Slots    [submit.MaxSlots]submit.Slot `json:"slots"`
	State    UIState                      `json:"state"`
}

func (s *Server) handleSubmitLog(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, want YYYY-MM-DD"})
		return
	}
	focus, err := models.ParseFocusGroup(req.Focus)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	exercise := strings.TrimSpace(req.Exercise)
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise is required"})
		return
	}

	sub, err := s.tracker.Submit(r.Context(), date, exercise, focus, req.Slots)
	if err != nil {
		// Partial success: already-appended rows stay committed, so the
		// count rides along with the failure.
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":      err.Error(),
			"kind":       "store_unavailable",
			"submission": sub,
			"state":      req.State,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"submission": sub,
		"state":      nextSubmitState(req.State, sub.Rows),
	})
}
