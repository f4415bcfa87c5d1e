package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/inorbit/internal/model"
	"github.com/templui/inorbit/internal/week"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, goalID string) (*model.Goal, error)
	WeeklyProgress(ctx context.Context, goalID string, window week.Window) (*model.GoalProgress, error)
	WeekGoals(ctx context.Context, window week.Window) ([]*model.PendingGoal, error)
	DeleteAll(ctx context.Context) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (id, title, desired_weekly_frequency, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.Title,
		goal.DesiredWeeklyFrequency,
		goal.CreatedAt.UTC(),
	)

	return err
}

func (r *goalRepository) ByID(ctx context.Context, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT id, title, desired_weekly_frequency, created_at FROM goals WHERE id = $1`

	err := r.db.GetContext(ctx, goal, query, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// WeeklyProgress returns the goal's target and its completion count inside window.
// A goal without completions in the window reports a count of zero.
func (r *goalRepository) WeeklyProgress(ctx context.Context, goalID string, window week.Window) (*model.GoalProgress, error) {
	window = window.UTC()
	query := `SELECT g.desired_weekly_frequency,
	                 COALESCE(c.completion_count, 0) AS completion_count
	          FROM goals g
	          LEFT JOIN (
	              SELECT goal_id, COUNT(id) AS completion_count
	              FROM goal_completions
	              WHERE created_at >= $1 AND created_at <= $2 AND goal_id = $3
	              GROUP BY goal_id
	          ) c ON c.goal_id = g.id
	          WHERE g.id = $4
	          LIMIT 1`

	progress := &model.GoalProgress{}
	err := r.db.GetContext(ctx, progress, query, window.Start, window.End, goalID, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return progress, nil
}

// WeekGoals lists every goal created on or before the end of window together with
// its completion count inside window. Goals that already met their target are included.
func (r *goalRepository) WeekGoals(ctx context.Context, window week.Window) ([]*model.PendingGoal, error) {
	window = window.UTC()
	query := `WITH goals_created_up_to_week AS (
	              SELECT id, title, desired_weekly_frequency, created_at
	              FROM goals
	              WHERE created_at <= $1
	          ),
	          goal_completion_counts AS (
	              SELECT goal_id, COUNT(id) AS completion_count
	              FROM goal_completions
	              WHERE created_at >= $2 AND created_at <= $3
	              GROUP BY goal_id
	          )
	          SELECT g.id, g.title, g.desired_weekly_frequency,
	                 COALESCE(c.completion_count, 0) AS completion_count
	          FROM goals_created_up_to_week g
	          LEFT JOIN goal_completion_counts c ON c.goal_id = g.id
	          ORDER BY g.created_at ASC, g.id ASC`

	goals := []*model.PendingGoal{}
	err := r.db.SelectContext(ctx, &goals, query, window.End, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals`)
	return err
}
