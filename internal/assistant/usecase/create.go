package usecase

import (
	"context"
	"strings"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
)

const aiTaskDescription = "AI-enhanced task with suggested improvements"
const aiTaskEffort = 3

// CreateTaskFromResponse turns a raw input plus a prior model response
// into a stored task: the input becomes both title and originalTitle,
// numbered lines in the response become subtasks, and the keyword
// classifier fills category and priority.
func (uc *implUseCase) CreateTaskFromResponse(ctx context.Context, sc model.Scope, input assistant.CreateTaskInput) (assistant.CreateTaskOutput, error) {
	if sc.IsZero() {
		return assistant.CreateTaskOutput{}, assistant.ErrNoUser
	}

	raw := strings.TrimSpace(input.Input)
	if raw == "" {
		return assistant.CreateTaskOutput{}, assistant.ErrEmptyCreate
	}

	classification := uc.classifier.Classify(raw)

	extracted := assistant.ExtractSubtasks(input.Response)
	subtasks := make([]task.SubtaskInput, len(extracted))
	for i, title := range extracted {
		subtasks[i] = task.SubtaskInput{Title: title}
	}

	created, err := uc.taskUC.Create(ctx, sc, task.CreateTaskInput{
		Title:         raw,
		Description:   aiTaskDescription,
		Category:      classification.Category,
		Priority:      classification.Priority,
		Urgency:       classification.Urgency,
		Effort:        aiTaskEffort,
		Status:        model.StatusTodo,
		Subtasks:      subtasks,
		AIEnhanced:    true,
		OriginalTitle: raw,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTaskFromResponse Create: %v", err)
		return assistant.CreateTaskOutput{}, err
	}

	return assistant.CreateTaskOutput{Task: created.Task}, nil
}
