package http

import (
	"time"

	"smarttaskai/internal/model"
	"smarttaskai/internal/planner"
)

// --- Request DTOs ---

type planReq struct {
	Date string `form:"date"`
}

func (r planReq) toInput() planner.GetPlanInput {
	return planner.GetPlanInput{Date: r.Date}
}

type syncReq struct {
	Date string `json:"date" binding:"omitempty"`
}

func (r syncReq) toInput() planner.SyncPlanInput {
	return planner.SyncPlanInput{Date: r.Date}
}

// --- Response DTOs ---

type plannedTaskResp struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Priority string  `json:"priority"`
	Effort   int     `json:"effort"`
	Status   string  `json:"status"`
	DueDate  *string `json:"due_date"`
	BestTime string  `json:"best_time"`
}

func newPlannedTaskResp(pt planner.PlannedTask) plannedTaskResp {
	resp := plannedTaskResp{
		ID:       pt.Task.ID,
		Title:    pt.Task.Title,
		Category: string(pt.Task.Category),
		Priority: string(pt.Task.Priority),
		Effort:   pt.Task.Effort,
		Status:   string(pt.Task.Status),
		BestTime: pt.BestTime,
	}
	if pt.Task.DueDate != nil {
		due := pt.Task.DueDate.Format(time.DateOnly)
		resp.DueDate = &due
	}
	return resp
}

type focusTaskResp struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"due_date"`
}

func newFocusTaskResp(t model.Task) focusTaskResp {
	resp := focusTaskResp{
		ID:       t.ID,
		Title:    t.Title,
		Category: string(t.Category),
		Priority: string(t.Priority),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.DateOnly)
		resp.DueDate = &due
	}
	return resp
}

type recommendationResp struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type planResp struct {
	Date            string               `json:"date"`
	IsToday         bool                 `json:"is_today"`
	Tasks           []plannedTaskResp    `json:"tasks"`
	HighPriority    []focusTaskResp      `json:"high_priority"`
	Overdue         []focusTaskResp      `json:"overdue"`
	Recommendations []recommendationResp `json:"recommendations"`
}

func (h *handler) newPlanResp(out planner.GetPlanOutput) planResp {
	plan := out.Plan

	tasks := make([]plannedTaskResp, len(plan.Tasks))
	for i, pt := range plan.Tasks {
		tasks[i] = newPlannedTaskResp(pt)
	}

	highPriority := make([]focusTaskResp, len(plan.HighPriority))
	for i, t := range plan.HighPriority {
		highPriority[i] = newFocusTaskResp(t)
	}

	overdue := make([]focusTaskResp, len(plan.Overdue))
	for i, t := range plan.Overdue {
		overdue[i] = newFocusTaskResp(t)
	}

	recs := make([]recommendationResp, len(plan.Recommendations))
	for i, rec := range plan.Recommendations {
		recs[i] = recommendationResp{Type: rec.Type, Title: rec.Title, Description: rec.Description}
	}

	return planResp{
		Date:            plan.Date.Format(time.DateOnly),
		IsToday:         plan.IsToday,
		Tasks:           tasks,
		HighPriority:    highPriority,
		Overdue:         overdue,
		Recommendations: recs,
	}
}

type syncedEventResp struct {
	TaskID   string `json:"task_id"`
	EventID  string `json:"event_id"`
	HtmlLink string `json:"html_link,omitempty"`
}

type syncResp struct {
	Events []syncedEventResp `json:"events"`
	Total  int               `json:"total"`
}

func (h *handler) newSyncResp(out planner.SyncPlanOutput) syncResp {
	events := make([]syncedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = syncedEventResp{TaskID: ev.TaskID, EventID: ev.EventID, HtmlLink: ev.HtmlLink}
	}
	return syncResp{Events: events, Total: len(events)}
}
