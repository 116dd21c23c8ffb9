package task

import (
	"context"

	"smarttaskai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD, all scoped to the authenticated user
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Status toggling maintains the completedAt invariant
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleTaskOutput, error)
	ToggleSubtask(ctx context.Context, sc model.Scope, taskID, subtaskID string) (UpdateTaskOutput, error)
}
