package http

import (
	"time"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/model"
)

// --- Request DTOs ---

type suggestReq struct {
	Mode  string `json:"mode"  binding:"required"`
	Input string `json:"input" binding:"required"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput() assistant.SuggestInput {
	return assistant.SuggestInput{
		Mode:  assistant.Mode(r.Mode),
		Input: r.Input,
	}
}

type createTaskReq struct {
	Input    string `json:"input"    binding:"required"`
	Response string `json:"response" binding:"omitempty"`
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput() assistant.CreateTaskInput {
	return assistant.CreateTaskInput{
		Input:    r.Input,
		Response: r.Response,
	}
}

// --- Response DTOs ---

type suggestResp struct {
	Mode     string   `json:"mode"`
	Response string   `json:"response"`
	Subtasks []string `json:"subtasks,omitempty"`
	Degraded bool     `json:"degraded"`
}

func (h *handler) newSuggestResp(out assistant.SuggestOutput) suggestResp {
	return suggestResp{
		Mode:     string(out.Mode),
		Response: out.Response,
		Subtasks: out.Subtasks,
		Degraded: out.Degraded,
	}
}

type insightsResp struct {
	Insights string `json:"insights"`
	Degraded bool   `json:"degraded"`
}

func (h *handler) newInsightsResp(out assistant.InsightsOutput) insightsResp {
	return insightsResp{
		Insights: out.Insights,
		Degraded: out.Degraded,
	}
}

type createdSubtaskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type createdTaskResp struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	Priority      string               `json:"priority"`
	Urgency       string               `json:"urgency"`
	Effort        int                  `json:"effort"`
	Status        string               `json:"status"`
	Subtasks      []createdSubtaskResp `json:"subtasks"`
	CreatedAt     time.Time            `json:"created_at"`
	AIEnhanced    bool                 `json:"ai_enhanced"`
	OriginalTitle string               `json:"original_title"`
}

type createTaskResp struct {
	Task createdTaskResp `json:"task"`
}

func (h *handler) newCreateTaskResp(out assistant.CreateTaskOutput) createTaskResp {
	return createTaskResp{Task: newCreatedTaskResp(out.Task)}
}

func newCreatedTaskResp(t model.Task) createdTaskResp {
	subtasks := make([]createdSubtaskResp, len(t.Subtasks))
	for i, s := range t.Subtasks {
		subtasks[i] = createdSubtaskResp{ID: s.ID, Title: s.Title, Completed: s.Completed}
	}
	return createdTaskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		Urgency:       string(t.Urgency),
		Effort:        t.Effort,
		Status:        string(t.Status),
		Subtasks:      subtasks,
		CreatedAt:     t.CreatedAt,
		AIEnhanced:    t.AIEnhanced,
		OriginalTitle: t.OriginalTitle,
	}
}
