package usecase

import (
	"context"
	"time"

	"smarttaskai/internal/model"
	"smarttaskai/internal/planner"
	taskRepo "smarttaskai/internal/task/repository"
)

// GetPlan loads the user's tasks and assembles the plan for the
// selected day. An empty date means today.
func (uc *implUseCase) GetPlan(ctx context.Context, sc model.Scope, input planner.GetPlanInput) (planner.GetPlanOutput, error) {
	if sc.IsZero() {
		return planner.GetPlanOutput{}, planner.ErrNoUser
	}

	date, err := uc.planDate(input.Date)
	if err != nil {
		return planner.GetPlanOutput{}, planner.ErrInvalidDate
	}

	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetPlan ListTasks: %v", err)
		return planner.GetPlanOutput{}, err
	}

	return planner.GetPlanOutput{
		Plan: planner.BuildPlan(tasks, date, uc.now()),
	}, nil
}

func (uc *implUseCase) planDate(raw string) (time.Time, error) {
	if raw == "" {
		return uc.now(), nil
	}
	return time.Parse(time.DateOnly, raw)
}
