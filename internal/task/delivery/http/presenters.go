package http

import (
	"time"

	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	"smarttaskai/pkg/response"
)

// --- Request DTOs ---

type subtaskReq struct {
	Title string `json:"title" binding:"required"`
}

type createReq struct {
	Title         string       `json:"title"          binding:"required,max=500"`
	Description   string       `json:"description"    binding:"max=2000"`
	Category      string       `json:"category"       binding:"required"`
	Priority      string       `json:"priority"       binding:"required"`
	Urgency       string       `json:"urgency"        binding:"required"`
	Effort        int          `json:"effort"         binding:"required,min=1,max=5"`
	Status        string       `json:"status"         binding:"omitempty"`
	DueDate       string       `json:"due_date"       binding:"omitempty"`
	Subtasks      []subtaskReq `json:"subtasks"       binding:"omitempty"`
	AIEnhanced    bool         `json:"ai_enhanced"`
	OriginalTitle string       `json:"original_title" binding:"omitempty,max=500"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	subtasks := make([]task.SubtaskInput, len(r.Subtasks))
	for i, s := range r.Subtasks {
		subtasks[i] = task.SubtaskInput{Title: s.Title}
	}
	return task.CreateTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		Category:      model.Category(r.Category),
		Priority:      model.Priority(r.Priority),
		Urgency:       model.Priority(r.Urgency),
		Effort:        r.Effort,
		Status:        model.Status(r.Status),
		DueDate:       r.DueDate,
		Subtasks:      subtasks,
		AIEnhanced:    r.AIEnhanced,
		OriginalTitle: r.OriginalTitle,
	}
}

// ---

type listReq struct {
	Category string `form:"category"`
	Priority string `form:"priority"`
	Status   string `form:"status"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Filter: model.Filter{
			Category: r.Category,
			Priority: r.Priority,
			Status:   r.Status,
		},
	}
}

// ---

type updateReq struct {
	ID          string           `json:"-"` // populated from URI param
	Title       *string          `json:"title"       binding:"omitempty,max=500"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Category    *string          `json:"category"    binding:"omitempty"`
	Priority    *string          `json:"priority"    binding:"omitempty"`
	Urgency     *string          `json:"urgency"     binding:"omitempty"`
	Effort      *int             `json:"effort"      binding:"omitempty"`
	Status      *string          `json:"status"      binding:"omitempty"`
	DueDate     *string          `json:"due_date"    binding:"omitempty"`
	Subtasks    *[]model.Subtask `json:"subtasks"    binding:"omitempty"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Effort:      r.Effort,
		DueDate:     r.DueDate,
		Subtasks:    r.Subtasks,
	}
	if r.Category != nil {
		category := model.Category(*r.Category)
		input.Category = &category
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		input.Priority = &priority
	}
	if r.Urgency != nil {
		urgency := model.Priority(*r.Urgency)
		input.Urgency = &urgency
	}
	if r.Status != nil {
		status := model.Status(*r.Status)
		input.Status = &status
	}
	return input
}

// --- Response DTOs ---

type subtaskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type taskResp struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Category      string         `json:"category"`
	Priority      string         `json:"priority"`
	Urgency       string         `json:"urgency"`
	Effort        int            `json:"effort"`
	Status        string         `json:"status"`
	DueDate       *response.Date `json:"due_date" swaggertype:"string"`
	Subtasks      []subtaskResp  `json:"subtasks"`
	CreatedAt     time.Time      `json:"created_at"`
	CompletedAt   *time.Time     `json:"completed_at"`
	AIEnhanced    bool           `json:"ai_enhanced,omitempty"`
	OriginalTitle string         `json:"original_title,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	subtasks := make([]subtaskResp, len(t.Subtasks))
	for i, s := range t.Subtasks {
		subtasks[i] = subtaskResp{ID: s.ID, Title: s.Title, Completed: s.Completed}
	}

	var dueDate *response.Date
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		dueDate = &d
	}

	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		Urgency:       string(t.Urgency),
		Effort:        t.Effort,
		Status:        string(t.Status),
		DueDate:       dueDate,
		Subtasks:      subtasks,
		CreatedAt:     t.CreatedAt,
		CompletedAt:   t.CompletedAt,
		AIEnhanced:    t.AIEnhanced,
		OriginalTitle: t.OriginalTitle,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleTaskOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}
