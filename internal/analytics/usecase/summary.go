package usecase

import (
	"context"

	"smarttaskai/internal/analytics"
	"smarttaskai/internal/model"
	taskRepo "smarttaskai/internal/task/repository"
)

// GetSummary loads the user's tasks and derives every metric in one
// pass. Nothing is cached; the summary always reflects current data.
func (uc *implUseCase) GetSummary(ctx context.Context, sc model.Scope) (analytics.GetSummaryOutput, error) {
	if sc.IsZero() {
		return analytics.GetSummaryOutput{}, analytics.ErrNoUser
	}

	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetSummary ListTasks: %v", err)
		return analytics.GetSummaryOutput{}, err
	}

	return analytics.GetSummaryOutput{
		Summary: analytics.Compute(tasks, uc.now()),
	}, nil
}
