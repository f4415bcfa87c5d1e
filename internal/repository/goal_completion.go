package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/inorbit/internal/model"
	"github.com/templui/inorbit/internal/week"
)

type GoalCompletionRepository interface {
	Create(ctx context.Context, completion *model.GoalCompletion) error
	InWindow(ctx context.Context, window week.Window) ([]*model.CompletedGoal, error)
	DeleteAll(ctx context.Context) error
}

type goalCompletionRepository struct {
	db *sqlx.DB
}

func NewGoalCompletionRepository(db *sqlx.DB) GoalCompletionRepository {
	return &goalCompletionRepository{db: db}
}

func (r *goalCompletionRepository) Create(ctx context.Context, completion *model.GoalCompletion) error {
	query := `INSERT INTO goal_completions (id, goal_id, created_at)
	          VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query,
		completion.ID,
		completion.GoalID,
		completion.CreatedAt.UTC(),
	)

	return err
}

// InWindow returns the completions recorded inside window, newest first.
func (r *goalCompletionRepository) InWindow(ctx context.Context, window week.Window) ([]*model.CompletedGoal, error) {
	window = window.UTC()
	query := `SELECT c.id, c.goal_id, g.title, c.created_at AS completed_at
	          FROM goal_completions c
	          INNER JOIN goals g ON g.id = c.goal_id
	          WHERE c.created_at >= $1 AND c.created_at <= $2
	          ORDER BY c.created_at DESC, c.id ASC`

	completions := []*model.CompletedGoal{}
	err := r.db.SelectContext(ctx, &completions, query, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return completions, nil
}

func (r *goalCompletionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goal_completions`)
	return err
}
