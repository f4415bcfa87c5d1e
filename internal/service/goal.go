package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/inorbit/internal/model"
	"github.com/templui/inorbit/internal/repository"
	"github.com/templui/inorbit/internal/validation"
	"github.com/templui/inorbit/internal/week"
)

var (
	ErrGoalAlreadyCompleted = errors.New("goal already completed this week")
)

const dayLayout = "2006-01-02"

type GoalService struct {
	repo           repository.GoalRepository
	completionRepo repository.GoalCompletionRepository
	weekStart      time.Weekday
	location       *time.Location
	now            func() time.Time
}

func NewGoalService(
	repo repository.GoalRepository,
	completionRepo repository.GoalCompletionRepository,
	weekStart time.Weekday,
	location *time.Location,
) *GoalService {
	if location == nil {
		location = time.Local
	}
	return &GoalService{
		repo:           repo,
		completionRepo: completionRepo,
		weekStart:      weekStart,
		location:       location,
		now:            time.Now,
	}
}

// WithClock replaces the time source used to place operations in a week.
func (s *GoalService) WithClock(now func() time.Time) *GoalService {
	s.now = now
	return s
}

// CurrentWeek returns the week containing the current time in the configured location.
func (s *GoalService) CurrentWeek() week.Window {
	return week.Of(s.now().In(s.location), s.weekStart)
}

func (s *GoalService) Create(ctx context.Context, title string, desiredWeeklyFrequency int) (*model.Goal, error) {
	title, err := validation.ValidateGoalTitle(title)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateWeeklyFrequency(desiredWeeklyFrequency)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		ID:                     uuid.New().String(),
		Title:                  title,
		DesiredWeeklyFrequency: desiredWeeklyFrequency,
		CreatedAt:              s.now().UTC(),
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(ctx context.Context, goalID string) (*model.Goal, error) {
	return s.repo.ByID(ctx, goalID)
}

// WeeklyProgress returns the goal's target and this week's completion count.
func (s *GoalService) WeeklyProgress(ctx context.Context, goalID string) (*model.GoalProgress, error) {
	return s.repo.WeeklyProgress(ctx, goalID, s.CurrentWeek())
}

// WeekPendingGoals lists every goal that exists by the end of the current week with
// its completion count for the week. Goals that already reached their target are
// included; use FilterPending to drop them.
func (s *GoalService) WeekPendingGoals(ctx context.Context) ([]*model.PendingGoal, error) {
	return s.repo.WeekGoals(ctx, s.CurrentWeek())
}

// FilterPending keeps the goals whose completion count is below their target.
func FilterPending(goals []*model.PendingGoal) []*model.PendingGoal {
	pending := make([]*model.PendingGoal, 0, len(goals))
	for _, g := range goals {
		if g.Pending() {
			pending = append(pending, g)
		}
	}
	return pending
}

// CreateCompletion records one completion of the goal unless the weekly target is
// already met. The count check and the insert are separate statements, so two
// concurrent calls at the boundary can both succeed.
func (s *GoalService) CreateCompletion(ctx context.Context, goalID string) (*model.GoalCompletion, error) {
	now := s.now()
	window := week.Of(now.In(s.location), s.weekStart)

	progress, err := s.repo.WeeklyProgress(ctx, goalID, window)
	if err != nil {
		return nil, err
	}

	if progress.Completed() {
		return nil, ErrGoalAlreadyCompleted
	}

	completion := &model.GoalCompletion{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		CreatedAt: now.UTC(),
	}

	err = s.completionRepo.Create(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal completion: %w", err)
	}

	slog.Debug("goal completion recorded",
		"goal_id", goalID,
		"completion_count", progress.CompletionCount+1,
		"desired_weekly_frequency", progress.DesiredWeeklyFrequency,
	)

	return completion, nil
}

// WeekSummary groups this week's completions by day and compares the total with
// the sum of all weekly targets.
func (s *GoalService) WeekSummary(ctx context.Context) (*model.WeekSummary, error) {
	window := s.CurrentWeek()

	goals, err := s.repo.WeekGoals(ctx, window)
	if err != nil {
		return nil, err
	}

	completions, err := s.completionRepo.InWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	summary := &model.WeekSummary{
		Completed:   len(completions),
		GoalsPerDay: map[string][]model.CompletedGoal{},
	}

	for _, g := range goals {
		summary.Total += g.DesiredWeeklyFrequency
	}

	for _, c := range completions {
		day := c.CompletedAt.In(s.location).Format(dayLayout)
		summary.GoalsPerDay[day] = append(summary.GoalsPerDay[day], *c)
	}

	return summary, nil
}
