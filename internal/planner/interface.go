package planner

import (
	"context"

	"smarttaskai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetPlan builds the day plan for the selected date.
	GetPlan(ctx context.Context, sc model.Scope, input GetPlanInput) (GetPlanOutput, error)

	// SyncToCalendar pushes the selected day's tasks to Google Calendar.
	SyncToCalendar(ctx context.Context, sc model.Scope, input SyncPlanInput) (SyncPlanOutput, error)
}
