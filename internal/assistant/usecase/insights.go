package usecase

import (
	"context"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/model"
	taskRepo "smarttaskai/internal/task/repository"
)

// Insights digests the user's tasks into a summary prompt and asks the
// model for daily planning advice. On model failure it degrades to the
// locally templated summary built from the same numbers.
func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (assistant.InsightsOutput, error) {
	if sc.IsZero() {
		return assistant.InsightsOutput{}, assistant.ErrNoUser
	}

	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights ListTasks: %v", err)
		return assistant.InsightsOutput{}, err
	}

	now := uc.now()
	summary := assistant.TaskSummary(tasks, now)

	text, err := uc.gen.Generate(ctx, assistant.BuildInsightsPrompt(summary))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights Generate: %v", err)
		return assistant.InsightsOutput{
			Insights: assistant.LocalInsights(tasks, now),
			Degraded: true,
		}, nil
	}

	return assistant.InsightsOutput{Insights: text}, nil
}
