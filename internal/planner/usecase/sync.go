package usecase

import (
	"context"
	"fmt"
	"time"

	"smarttaskai/internal/model"
	"smarttaskai/internal/planner"
	taskRepo "smarttaskai/internal/task/repository"
	"smarttaskai/pkg/gcalendar"
)

const defaultEventDuration = time.Hour

// SyncToCalendar creates one calendar event per task due on the
// selected day. Events start at 09:00 local and are stacked
// back-to-back; a failed insert skips the task and continues.
func (uc *implUseCase) SyncToCalendar(ctx context.Context, sc model.Scope, input planner.SyncPlanInput) (planner.SyncPlanOutput, error) {
	if sc.IsZero() {
		return planner.SyncPlanOutput{}, planner.ErrNoUser
	}
	if uc.calendar == nil {
		return planner.SyncPlanOutput{}, planner.ErrSyncDisabled
	}

	date, err := uc.planDate(input.Date)
	if err != nil {
		return planner.SyncPlanOutput{}, planner.ErrInvalidDate
	}

	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncToCalendar ListTasks: %v", err)
		return planner.SyncPlanOutput{}, err
	}

	year, month, day := date.Date()
	slot := time.Date(year, month, day, 9, 0, 0, 0, time.Local)

	events := make([]planner.SyncedEvent, 0)
	for _, t := range tasks {
		if !t.DueOn(date) || t.Status == model.StatusCompleted {
			continue
		}

		created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     t.Title,
			Description: eventDescription(t),
			StartTime:   slot,
			EndTime:     slot.Add(defaultEventDuration),
		})
		slot = slot.Add(defaultEventDuration)
		if err != nil {
			uc.l.Warnf(ctx, "uc.SyncToCalendar CreateEvent %s: %v", t.ID, err)
			continue
		}

		events = append(events, planner.SyncedEvent{
			TaskID:   t.ID,
			EventID:  created.ID,
			HtmlLink: created.HtmlLink,
		})
	}

	return planner.SyncPlanOutput{Events: events}, nil
}

func eventDescription(t model.Task) string {
	desc := fmt.Sprintf("%s priority %s task, effort %d/5. Best time: %s.",
		t.Priority, t.Category, t.Effort, planner.TimeRecommendation(t))
	if t.Description != "" {
		desc = t.Description + "\n\n" + desc
	}
	return desc
}
