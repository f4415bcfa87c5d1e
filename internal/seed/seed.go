package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/inorbit/internal/model"
	"github.com/templui/inorbit/internal/repository"
	"github.com/templui/inorbit/internal/week"
)

type goalSeed struct {
	title     string
	frequency int
	// day offset from the start of the week of the one seeded completion
	completedOn int
}

var goalSeeds = []goalSeed{
	{title: "Wake up early", frequency: 5, completedOn: 0},
	{title: "Exercise", frequency: 3, completedOn: 1},
	{title: "Walk the dog", frequency: 5, completedOn: 2},
}

// Result holds the rows inserted by Run.
type Result struct {
	Goals       []*model.Goal
	Completions []*model.GoalCompletion
}

// Run clears both tables and inserts the example goals, each with one completion
// on a different day of the week containing now.
func Run(
	ctx context.Context,
	goals repository.GoalRepository,
	completions repository.GoalCompletionRepository,
	now time.Time,
	weekStart time.Weekday,
) (*Result, error) {
	err := completions.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear goal completions: %w", err)
	}

	err = goals.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear goals: %w", err)
	}

	window := week.Of(now, weekStart)
	result := &Result{}

	for _, s := range goalSeeds {
		goal := &model.Goal{
			ID:                     uuid.New().String(),
			Title:                  s.title,
			DesiredWeeklyFrequency: s.frequency,
			CreatedAt:              now.UTC(),
		}
		err = goals.Create(ctx, goal)
		if err != nil {
			return nil, fmt.Errorf("failed to create goal %q: %w", s.title, err)
		}
		result.Goals = append(result.Goals, goal)
	}

	for i, s := range goalSeeds {
		completion := &model.GoalCompletion{
			ID:        uuid.New().String(),
			GoalID:    result.Goals[i].ID,
			CreatedAt: window.Start.AddDate(0, 0, s.completedOn).UTC(),
		}
		err = completions.Create(ctx, completion)
		if err != nil {
			return nil, fmt.Errorf("failed to create completion for %q: %w", s.title, err)
		}
		result.Completions = append(result.Completions, completion)
	}

	slog.Info("database seeded", "goals", len(result.Goals), "completions", len(result.Completions))
	return result, nil
}
