package routes

import (
	"net/http"

	"github.com/templui/inorbit/internal/app"
	"github.com/templui/inorbit/internal/handler"
	"github.com/templui/inorbit/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	goal := handler.NewGoalHandler(app.GoalService, app.ExportService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Healthz)

	// Goals
	mux.HandleFunc("POST /goals", goal.Create)
	mux.HandleFunc("GET /goals/pending", goal.PendingGoals)
	mux.HandleFunc("GET /goals/export", goal.Export)
	mux.HandleFunc("POST /goals/{id}/completions", goal.CreateCompletion)

	// Summary
	mux.HandleFunc("GET /summary", goal.Summary)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Recover,
	)

	return handler
}
