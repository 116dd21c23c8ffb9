package usecase

import (
	"context"

	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	repo "smarttaskai/internal/task/repository"
)

// Toggle flips a task between Completed and Todo. Any non-completed
// status toggles to Completed; toggling back always lands on Todo, not
// the prior status. completed_at is stamped or cleared in the same
// write.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (task.ToggleTaskOutput, error) {
	if sc.IsZero() {
		return task.ToggleTaskOutput{}, task.ErrNoUser
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleTaskOutput{}, task.ErrTaskNotFound
	}

	next := model.StatusCompleted
	if existing.Status == model.StatusCompleted {
		next = model.StatusTodo
	}

	patch := repo.TaskPatch{Status: &next}
	uc.completionPatch(&patch, existing.Status, next)

	if err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:     id,
		UserID: sc.UserID,
		Patch:  patch,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}

	return task.ToggleTaskOutput{Task: applyPatch(existing, patch)}, nil
}

// ToggleSubtask flips one subtask's completed flag and persists the
// whole subtasks column. The parent task's status is not touched.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, taskID, subtaskID string) (task.UpdateTaskOutput, error) {
	if sc.IsZero() {
		return task.UpdateTaskOutput{}, task.ErrNoUser
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleSubtask GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	subtasks := make([]model.Subtask, len(existing.Subtasks))
	copy(subtasks, existing.Subtasks)

	found := false
	for i := range subtasks {
		if subtasks[i].ID == subtaskID {
			subtasks[i].Completed = !subtasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return task.UpdateTaskOutput{}, task.ErrSubtaskNotFound
	}

	patch := repo.TaskPatch{Subtasks: &subtasks}
	if err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:     taskID,
		UserID: sc.UserID,
		Patch:  patch,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleSubtask UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	return task.UpdateTaskOutput{Task: applyPatch(existing, patch)}, nil
}
