package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/liftlog/internal/models"
)

// --- Tool definitions ---

var toolGetSessionSummary = mcp.NewTool("get_session_summary",
	mcp.WithDescription("Last recorded session for a focus group: one row per exercise, weight and reps per set, for one athlete."),
	mcp.WithString("focus", mcp.Required(), mcp.Description("Focus muscle group"), mcp.Enum("Back", "Shoulder", "Chest", "Biceps", "Legs", "Triceps")),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name as configured")),
)

var toolGetMaxLifts = mcp.NewTool("get_max_lifts",
	mcp.WithDescription("Max-lift progression per exercise: for each training date, the heaviest weight the athlete logged that day."),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name as configured")),
	mcp.WithString("exercise", mcp.Description("Filter by exercise name (partial match, e.g. 'bench press')")),
)

var toolGetWeeklyVolume = mcp.NewTool("get_weekly_volume",
	mcp.WithDescription("Training volume (sum of weight × reps) per Monday-start calendar week for one athlete."),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name as configured")),
)

var toolGetWeeklyFrequency = mcp.NewTool("get_weekly_frequency",
	mcp.WithDescription("Distinct workout days per Monday-start calendar week."),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name as configured")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("The exercise catalog grouped by focus muscle group, in the order exercises were added."),
	mcp.WithString("focus", mcp.Description("Limit to one focus group"), mcp.Enum("Back", "Shoulder", "Chest", "Biceps", "Legs", "Triceps")),
)

var toolListAthletes = mcp.NewTool("list_athletes",
	mcp.WithDescription("The two tracked athlete names."),
)

// --- Tool handlers ---

func (h *handlers) athleteArg(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	athlete, err := req.RequireString("athlete")
	if err != nil {
		return "", mcp.NewToolResultError("athlete parameter is required")
	}
	if !h.ds.KnownAthlete(athlete) {
		return "", mcp.NewToolResultError("unknown athlete " + athlete)
	}
	return athlete, nil
}

func (h *handlers) getSessionSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	focusStr, err := req.RequireString("focus")
	if err != nil {
		return mcp.NewToolResultError("focus parameter is required"), nil
	}
	focus, err := models.ParseFocusGroup(focusStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	athlete, errResult := h.athleteArg(req)
	if errResult != nil {
		return errResult, nil
	}

	sum, err := h.ds.Summary(ctx, focus, athlete)
	if err != nil {
		h.log.Error("mcp get_session_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	// Render with headers so the model does not have to reconstruct the
	// column layout from (set, metric) pairs.
	type row struct {
		Exercise string             `json:"exercise"`
		Values   map[string]*float64 `json:"values"`
	}
	out := struct {
		Date string `json:"date"`
		Rows []row  `json:"rows"`
	}{Date: sum.Date.String()}
	for _, r := range sum.Rows {
		values := make(map[string]*float64, len(sum.Columns))
		for i, col := range sum.Columns {
			values[col.Label()] = r.Cells[i]
		}
		out.Rows = append(out.Rows, row{Exercise: r.Exercise, Values: values})
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMaxLifts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athlete, errResult := h.athleteArg(req)
	if errResult != nil {
		return errResult, nil
	}

	series, err := h.ds.MaxLifts(ctx, athlete, req.GetString("exercise", ""))
	if err != nil {
		h.log.Error("mcp get_max_lifts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(series)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athlete, errResult := h.athleteArg(req)
	if errResult != nil {
		return errResult, nil
	}

	aggs, err := h.ds.WeeklyAggregates(ctx, athlete)
	if err != nil {
		h.log.Error("mcp get_weekly_volume", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	type point struct {
		WeekStart time.Time `json:"week_start"`
		Volume    float64   `json:"total_volume"`
	}
	points := make([]point, 0, len(aggs))
	for _, a := range aggs {
		points = append(points, point{WeekStart: a.WeekStart, Volume: a.TotalVolume})
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyFrequency(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athlete, errResult := h.athleteArg(req)
	if errResult != nil {
		return errResult, nil
	}

	aggs, err := h.ds.WeeklyAggregates(ctx, athlete)
	if err != nil {
		h.log.Error("mcp get_weekly_frequency", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	type point struct {
		WeekStart time.Time `json:"week_start"`
		Days      int       `json:"distinct_workout_days"`
	}
	points := make([]point, 0, len(aggs))
	for _, a := range aggs {
		points = append(points, point{WeekStart: a.WeekStart, Days: a.DistinctWorkoutDays})
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := h.ds.Catalog(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if focusStr := req.GetString("focus", ""); focusStr != "" {
		focus, err := models.ParseFocusGroup(focusStr)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := mcp.NewToolResultJSON(map[string]any{
			"focus":     focus,
			"exercises": c.Exercises(focus),
		})
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	result, err := mcp.NewToolResultJSON(c)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listAthletes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.ds.Athletes())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
