package task

import "smarttaskai/internal/model"

// --- UseCase Inputs ---

// SubtaskInput is a subtask title submitted with a task draft.
type SubtaskInput struct {
	Title string
}

// CreateTaskInput is a task draft: all Task attributes except id and
// createdAt, which the store assigns.
type CreateTaskInput struct {
	Title         string
	Description   string
	Category      model.Category
	Priority      model.Priority
	Urgency       model.Priority
	Effort        int
	Status        model.Status
	DueDate       string // calendar date string; empty means unset
	Subtasks      []SubtaskInput
	AIEnhanced    bool
	OriginalTitle string
}

// ListTasksInput carries the ephemeral filter applied to the loaded collection.
type ListTasksInput struct {
	Filter model.Filter
}

// UpdateTaskInput is a partial update: nil fields are left untouched.
// DueDate set to the empty string clears the due date.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	Category    *model.Category
	Priority    *model.Priority
	Urgency     *model.Priority
	Effort      *int
	Status      *model.Status
	DueDate     *string
	Subtasks    *[]model.Subtask
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type UpdateTaskOutput struct {
	Task model.Task
}

type ToggleTaskOutput struct {
	Task model.Task
}
