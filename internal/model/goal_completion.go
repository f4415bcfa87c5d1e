package model

import (
	"time"
)

type GoalCompletion struct {
	ID        string    `db:"id" json:"id"`
	GoalID    string    `db:"goal_id" json:"goalId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CompletedGoal is a completion joined with the title of its goal.
type CompletedGoal struct {
	ID          string    `db:"id" json:"id"`
	GoalID      string    `db:"goal_id" json:"goalId"`
	Title       string    `db:"title" json:"title"`
	CompletedAt time.Time `db:"completed_at" json:"completedAt"`
}

type WeekSummary struct {
	Completed   int                        `json:"completed"`
	Total       int                        `json:"total"`
	GoalsPerDay map[string][]CompletedGoal `json:"goalsPerDay"`
}
