package usecase

import (
	"context"
	"strings"

	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	repo "smarttaskai/internal/task/repository"
)

// Update applies a partial patch to one task. The same patch is sent
// to the store and merged into the fetched copy, so the returned task
// reflects the update without a second round trip.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if sc.IsZero() {
		return task.UpdateTaskOutput{}, task.ErrNoUser
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	patch, err := uc.buildPatch(input, existing)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	if err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Patch:  patch,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	return task.UpdateTaskOutput{Task: applyPatch(existing, patch)}, nil
}

// buildPatch validates the submitted fields and compiles them into a
// store patch, stamping completed_at when the status transition
// requires it.
func (uc *implUseCase) buildPatch(input task.UpdateTaskInput, existing model.Task) (repo.TaskPatch, error) {
	var patch repo.TaskPatch

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return repo.TaskPatch{}, task.ErrTitleRequired
		}
		patch.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		patch.Description = &desc
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return repo.TaskPatch{}, task.ErrInvalidPayload
		}
		patch.Category = input.Category
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return repo.TaskPatch{}, task.ErrInvalidPayload
		}
		patch.Priority = input.Priority
	}
	if input.Urgency != nil {
		if !input.Urgency.IsValid() {
			return repo.TaskPatch{}, task.ErrInvalidPayload
		}
		patch.Urgency = input.Urgency
	}
	if input.Effort != nil {
		if *input.Effort < model.EffortMin || *input.Effort > model.EffortMax {
			return repo.TaskPatch{}, task.ErrInvalidPayload
		}
		patch.Effort = input.Effort
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return repo.TaskPatch{}, task.ErrInvalidPayload
		}
		patch.Status = input.Status
		uc.completionPatch(&patch, existing.Status, *input.Status)
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			due, err := parseDueDate(*input.DueDate)
			if err != nil {
				return repo.TaskPatch{}, task.ErrInvalidDueDate
			}
			patch.DueDate = &due
		}
	}
	if input.Subtasks != nil {
		patch.Subtasks = input.Subtasks
	}

	return patch, nil
}
