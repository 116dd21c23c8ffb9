package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	repo "smarttaskai/internal/task/repository"
)

// Create validates a draft and inserts it for the authenticated user.
// The returned Task carries the server-assigned id and created_at.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if sc.IsZero() {
		return task.CreateTaskOutput{}, task.ErrNoUser
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrTitleRequired
	}

	draft := model.Task{
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		Category:      input.Category,
		Priority:      input.Priority,
		Urgency:       input.Urgency,
		Effort:        input.Effort,
		Status:        input.Status,
		Subtasks:      buildSubtasks(input.Subtasks),
		AIEnhanced:    input.AIEnhanced,
		OriginalTitle: input.OriginalTitle,
		UserID:        sc.UserID,
	}
	if draft.Status == "" {
		draft.Status = model.StatusTodo
	}

	if !draft.Category.IsValid() || !draft.Priority.IsValid() || !draft.Urgency.IsValid() || !draft.Status.IsValid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPayload
	}
	if draft.Effort < model.EffortMin || draft.Effort > model.EffortMax {
		return task.CreateTaskOutput{}, task.ErrInvalidPayload
	}

	// Empty due-date strings mean "unset", not "today".
	if input.DueDate != "" {
		due, err := parseDueDate(input.DueDate)
		if err != nil {
			return task.CreateTaskOutput{}, task.ErrInvalidDueDate
		}
		draft.DueDate = &due
	}

	// completedAt is present iff the task is completed, even for drafts
	// created directly in the Completed state.
	if draft.Status == model.StatusCompleted {
		now := uc.now()
		draft.CompletedAt = &now
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Task: draft})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

// buildSubtasks trims submitted titles, drops empty ones, and assigns ids.
func buildSubtasks(inputs []task.SubtaskInput) []model.Subtask {
	subtasks := make([]model.Subtask, 0, len(inputs))
	for _, in := range inputs {
		title := strings.TrimSpace(in.Title)
		if title == "" {
			continue
		}
		subtasks = append(subtasks, model.Subtask{
			ID:    uuid.NewString(),
			Title: title,
		})
	}
	return subtasks
}
