package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/inorbit/internal/app"
	"github.com/templui/inorbit/internal/config"
	"github.com/templui/inorbit/internal/routes"
	"github.com/templui/inorbit/internal/testutil"
)

var monday = time.Date(2026, time.October, 12, 9, 0, 0, 0, time.UTC)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		AppEnv:    "development",
		DBDriver:  "sqlite",
		WeekStart: time.Sunday,
		Location:  time.UTC,
	}
	a := app.NewWithDB(cfg, testutil.NewTestDB(t))
	a.GoalService.WithClock(func() time.Time { return monday })
	return routes.SetupRoutes(a)
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var result map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	}
	return rec, result
}

func createGoal(t *testing.T, h http.Handler, title string, freq int) string {
	t.Helper()
	rec, result := do(t, h, http.MethodPost, "/goals", map[string]any{
		"title":                  title,
		"desiredWeeklyFrequency": freq,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return result["goal"].(map[string]any)["id"].(string)
}

func TestCreateGoal(t *testing.T) {
	h := setupServer(t)

	rec, result := do(t, h, http.MethodPost, "/goals", map[string]any{
		"title":                  "Exercise",
		"desiredWeeklyFrequency": 3,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	goal := result["goal"].(map[string]any)
	assert.Equal(t, "Exercise", goal["title"])
	assert.Equal(t, float64(3), goal["desiredWeeklyFrequency"])
	assert.NotEmpty(t, goal["id"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateGoal_Invalid(t *testing.T) {
	h := setupServer(t)

	rec, result := do(t, h, http.MethodPost, "/goals", map[string]any{
		"title":                  "Exercise",
		"desiredWeeklyFrequency": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "desired weekly frequency must be at least 1", result["error"])

	req := httptest.NewRequest(http.MethodPost, "/goals", bytes.NewBufferString("{"))
	raw := httptest.NewRecorder()
	h.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestCreateCompletion(t *testing.T) {
	h := setupServer(t)
	id := createGoal(t, h, "Read", 2)

	for i := 0; i < 2; i++ {
		rec, result := do(t, h, http.MethodPost, "/goals/"+id+"/completions", nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		completion := result["goalCompletion"].(map[string]any)
		assert.Equal(t, id, completion["goalId"])
	}

	rec, result := do(t, h, http.MethodPost, "/goals/"+id+"/completions", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "goal already completed this week", result["error"])
}

func TestCreateCompletion_UnknownGoal(t *testing.T) {
	h := setupServer(t)

	rec, result := do(t, h, http.MethodPost, "/goals/missing/completions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "goal not found", result["error"])
}

func TestPendingGoals(t *testing.T) {
	h := setupServer(t)
	walkDog := createGoal(t, h, "Walk Dog", 5)
	read := createGoal(t, h, "Read", 1)

	rec, _ := do(t, h, http.MethodPost, "/goals/"+read+"/completions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, result := do(t, h, http.MethodGet, "/goals/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	goals := result["pendingGoals"].([]any)
	require.Len(t, goals, 2)

	counts := map[string]float64{}
	for _, g := range goals {
		m := g.(map[string]any)
		counts[m["id"].(string)] = m["completionCount"].(float64)
	}
	assert.Equal(t, float64(0), counts[walkDog])
	assert.Equal(t, float64(1), counts[read])

	rec, result = do(t, h, http.MethodGet, "/goals/pending?pending=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	goals = result["pendingGoals"].([]any)
	require.Len(t, goals, 1)
	assert.Equal(t, walkDog, goals[0].(map[string]any)["id"])

	rec, _ = do(t, h, http.MethodGet, "/goals/pending?pending=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPendingGoals_Empty(t *testing.T) {
	h := setupServer(t)

	rec, result := do(t, h, http.MethodGet, "/goals/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, result["pendingGoals"])
}

func TestSummary(t *testing.T) {
	h := setupServer(t)
	id := createGoal(t, h, "Exercise", 3)
	rec, _ := do(t, h, http.MethodPost, "/goals/"+id+"/completions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, result := do(t, h, http.MethodGet, "/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := result["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["completed"])
	assert.Equal(t, float64(3), summary["total"])
	perDay := summary["goalsPerDay"].(map[string]any)
	assert.Len(t, perDay["2026-10-12"], 1)
}

func TestExport(t *testing.T) {
	h := setupServer(t)
	createGoal(t, h, "Exercise", 3)

	rec, result := do(t, h, http.MethodGet, "/goals/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=goals-export.json", rec.Header().Get("Content-Disposition"))
	assert.Len(t, result["goals"], 1)
}

func TestHealthz(t *testing.T) {
	h := setupServer(t)

	rec, result := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", result["status"])
}
