package usecase

import (
	"context"

	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	repo "smarttaskai/internal/task/repository"
)

// Delete removes the user's task by id.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if sc.IsZero() {
		return task.ErrNoUser
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
