package model

import (
	"time"
)

type Goal struct {
	ID                     string    `db:"id" json:"id"`
	Title                  string    `db:"title" json:"title"`
	DesiredWeeklyFrequency int       `db:"desired_weekly_frequency" json:"desiredWeeklyFrequency"`
	CreatedAt              time.Time `db:"created_at" json:"createdAt"`
}

// GoalProgress is a goal's target and the number of completions recorded in one week.
type GoalProgress struct {
	DesiredWeeklyFrequency int `db:"desired_weekly_frequency" json:"desiredWeeklyFrequency"`
	CompletionCount        int `db:"completion_count" json:"completionCount"`
}

func (p GoalProgress) Completed() bool {
	return p.CompletionCount >= p.DesiredWeeklyFrequency
}

// PendingGoal is one row of the week's progress listing.
type PendingGoal struct {
	ID                     string `db:"id" json:"id"`
	Title                  string `db:"title" json:"title"`
	DesiredWeeklyFrequency int    `db:"desired_weekly_frequency" json:"desiredWeeklyFrequency"`
	CompletionCount        int    `db:"completion_count" json:"completionCount"`
}

func (g PendingGoal) Pending() bool {
	return g.CompletionCount < g.DesiredWeeklyFrequency
}
