package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/templui/inorbit/internal/model"
	"github.com/templui/inorbit/internal/storage"
)

// WeekExport is the document written by ExportService.
type WeekExport struct {
	WeekStart  time.Time            `json:"weekStart"`
	WeekEnd    time.Time            `json:"weekEnd"`
	ExportedAt time.Time            `json:"exportedAt"`
	Goals      []*model.PendingGoal `json:"goals"`
}

type ExportService struct {
	goalService *GoalService
}

func NewExportService(goalService *GoalService) *ExportService {
	return &ExportService{goalService: goalService}
}

// Key returns the object key used for the current week's export.
func (s *ExportService) Key() string {
	return fmt.Sprintf("exports/week-%s.json", s.goalService.CurrentWeek().Start.Format(dayLayout))
}

// Write encodes the current week's progress as JSON.
func (s *ExportService) Write(ctx context.Context, w io.Writer) error {
	window := s.goalService.CurrentWeek()

	goals, err := s.goalService.WeekPendingGoals(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(WeekExport{
		WeekStart:  window.Start,
		WeekEnd:    window.End,
		ExportedAt: s.goalService.now().UTC(),
		Goals:      goals,
	})
}

// Upload writes the current week's export to store and returns its key.
func (s *ExportService) Upload(ctx context.Context, store storage.Storage) (string, error) {
	var buf bytes.Buffer
	err := s.Write(ctx, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build export: %w", err)
	}

	key := s.Key()
	err = store.Save(ctx, key, "application/json", &buf)
	if err != nil {
		return "", err
	}

	slog.Info("week export uploaded", "key", key)
	return key, nil
}
