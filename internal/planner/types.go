package planner

import (
	"time"

	"smarttaskai/internal/model"
)

// PlannedTask pairs a task due on the plan day with its suggested
// time-of-day slot.
type PlannedTask struct {
	Task     model.Task
	BestTime string
}

// Recommendation is one advice card in the day plan.
type Recommendation struct {
	Type        string
	Title       string
	Description string
}

// Plan is a full day plan: the day's tasks, focus lists and advice.
type Plan struct {
	Date            time.Time
	IsToday         bool
	Tasks           []PlannedTask
	HighPriority    []model.Task
	Overdue         []model.Task
	Recommendations []Recommendation
}

// --- UseCase Inputs/Outputs ---

// GetPlanInput selects the plan day. Empty date means today.
type GetPlanInput struct {
	Date string
}

type GetPlanOutput struct {
	Plan Plan
}

// SyncPlanInput selects the day whose tasks are pushed to the calendar.
type SyncPlanInput struct {
	Date string
}

// SyncedEvent records one calendar event created for a task.
type SyncedEvent struct {
	TaskID   string
	EventID  string
	HtmlLink string
}

type SyncPlanOutput struct {
	Events []SyncedEvent
}
