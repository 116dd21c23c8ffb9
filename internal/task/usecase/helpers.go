package usecase

import (
	"time"

	"smarttaskai/internal/model"
	repo "smarttaskai/internal/task/repository"
)

// parseDueDate accepts the store's date-only format first, then full
// RFC3339 timestamps.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// applyPatch mirrors a store patch onto an in-memory task so callers
// can return the updated state without re-fetching the row.
func applyPatch(t model.Task, p repo.TaskPatch) model.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Urgency != nil {
		t.Urgency = *p.Urgency
	}
	if p.Effort != nil {
		t.Effort = *p.Effort
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.ClearCompletedAt {
		t.CompletedAt = nil
	} else if p.CompletedAt != nil {
		done := *p.CompletedAt
		t.CompletedAt = &done
	}
	if p.Subtasks != nil {
		t.Subtasks = *p.Subtasks
	}
	return t
}

// completionPatch stamps or clears completed_at so that it is present
// exactly when the task is completed.
func (uc *implUseCase) completionPatch(p *repo.TaskPatch, current model.Status, next model.Status) {
	if next == current {
		return
	}
	if next == model.StatusCompleted {
		now := uc.now()
		p.CompletedAt = &now
		return
	}
	if current == model.StatusCompleted {
		p.ClearCompletedAt = true
	}
}
