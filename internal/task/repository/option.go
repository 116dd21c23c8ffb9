package repository

import (
	"time"

	"smarttaskai/internal/model"
)

// ListTasksOptions holds parameters for listing a user's tasks.
type ListTasksOptions struct {
	UserID string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// CreateTaskOptions holds the draft to insert. ID and CreatedAt on the
// draft are ignored; the store assigns them.
type CreateTaskOptions struct {
	Task model.Task
}

// TaskPatch is a partial update: nil fields are not sent. The Clear
// flags null out their column explicitly, which a nil pointer cannot
// express.
type TaskPatch struct {
	Title            *string
	Description      *string
	Category         *model.Category
	Priority         *model.Priority
	Urgency          *model.Priority
	Effort           *int
	Status           *model.Status
	DueDate          *time.Time
	ClearDueDate     bool
	CompletedAt      *time.Time
	ClearCompletedAt bool
	Subtasks         *[]model.Subtask
}

// UpdateTaskOptions holds parameters for patching an existing task.
type UpdateTaskOptions struct {
	ID     string
	UserID string
	Patch  TaskPatch
}

// DeleteTaskOptions holds parameters for removing a task.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
