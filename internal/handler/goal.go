package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/templui/inorbit/internal/ctxkeys"
	"github.com/templui/inorbit/internal/model"
	"github.com/templui/inorbit/internal/repository"
	"github.com/templui/inorbit/internal/service"
	"github.com/templui/inorbit/internal/validation"
)

type GoalHandler struct {
	goalService   *service.GoalService
	exportService *service.ExportService
}

func NewGoalHandler(goalService *service.GoalService, exportService *service.ExportService) *GoalHandler {
	return &GoalHandler{
		goalService:   goalService,
		exportService: exportService,
	}
}

type createGoalRequest struct {
	Title                  string `json:"title"`
	DesiredWeeklyFrequency int    `json:"desiredWeeklyFrequency"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.goalService.Create(r.Context(), req.Title, req.DesiredWeeklyFrequency)
	if validation.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err != nil {
		slog.Error("failed to create goal", "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]*model.Goal{"goal": goal})
}

// PendingGoals lists this week's goals with their completion counts.
// With ?pending=true only goals below their weekly target are returned.
func (h *GoalHandler) PendingGoals(w http.ResponseWriter, r *http.Request) {
	onlyPending := false
	if v := r.URL.Query().Get("pending"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid pending filter")
			return
		}
		onlyPending = b
	}

	goals, err := h.goalService.WeekPendingGoals(r.Context())
	if err != nil {
		slog.Error("failed to get week pending goals", "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to load pending goals")
		return
	}

	if onlyPending {
		goals = service.FilterPending(goals)
	}

	writeJSON(w, http.StatusOK, map[string][]*model.PendingGoal{"pendingGoals": goals})
}

func (h *GoalHandler) CreateCompletion(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	completion, err := h.goalService.CreateCompletion(r.Context(), goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	if errors.Is(err, service.ErrGoalAlreadyCompleted) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	if err != nil {
		slog.Error("failed to create goal completion", "error", err, "goal_id", goalID, "request_id", ctxkeys.RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to create goal completion")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]*model.GoalCompletion{"goalCompletion": completion})
}

func (h *GoalHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.goalService.WeekSummary(r.Context())
	if err != nil {
		slog.Error("failed to get week summary", "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to load summary")
		return
	}

	writeJSON(w, http.StatusOK, map[string]*model.WeekSummary{"summary": summary})
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=goals-export.json")

	err := h.exportService.Write(r.Context(), w)
	if err != nil {
		slog.Error("failed to export goals", "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		w.Header().Del("Content-Disposition")
		writeError(w, http.StatusInternalServerError, "failed to export goals")
		return
	}
}
