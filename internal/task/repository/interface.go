package repository

import (
	"context"

	"smarttaskai/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Every method is scoped to a user; rows belonging to other users are
// never visible.
type TaskRepository interface {
	// ListTasks returns all tasks for the user, newest first.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// GetOneTask returns the zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	// CreateTask inserts a draft and returns the stored row with its
	// server-assigned id and created_at.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// UpdateTask sends only the fields set on the patch.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) error

	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
