package usecase

import (
	"context"

	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	repo "smarttaskai/internal/task/repository"
)

// List loads the user's tasks newest-first and applies the ephemeral
// filter in memory, preserving store order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if sc.IsZero() {
		return task.ListTasksOutput{}, task.ErrNoUser
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	filtered := model.ApplyFilter(tasks, input.Filter)
	return task.ListTasksOutput{
		Tasks: filtered,
		Total: len(filtered),
	}, nil
}
