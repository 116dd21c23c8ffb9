package postgrest

import (
	"time"

	"smarttaskai/internal/model"
)

// taskRow mirrors the snake_case columns of the remote tasks table.
type taskRow struct {
	ID            string          `json:"id,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Priority      string          `json:"priority"`
	Urgency       string          `json:"urgency"`
	Effort        int             `json:"effort"`
	Status        string          `json:"status"`
	DueDate       *string         `json:"due_date"`
	Subtasks      []model.Subtask `json:"subtasks"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at"`
	AIEnhanced    bool            `json:"ai_enhanced"`
	OriginalTitle string          `json:"original_title,omitempty"`
	UserID        string          `json:"user_id"`
}

// newTaskRow builds an insert body from a draft. ID and CreatedAt are
// left for the store to assign.
func newTaskRow(t model.Task) taskRow {
	row := taskRow{
		Title:         t.Title,
		Description:   t.Description,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		Urgency:       string(t.Urgency),
		Effort:        t.Effort,
		Status:        string(t.Status),
		Subtasks:      t.Subtasks,
		CompletedAt:   t.CompletedAt,
		AIEnhanced:    t.AIEnhanced,
		OriginalTitle: t.OriginalTitle,
		UserID:        t.UserID,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.DateOnly)
		row.DueDate = &due
	}
	return row
}

func (row taskRow) toModel() model.Task {
	t := model.Task{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Category:      model.Category(row.Category),
		Priority:      model.Priority(row.Priority),
		Urgency:       model.Priority(row.Urgency),
		Effort:        row.Effort,
		Status:        model.Status(row.Status),
		Subtasks:      row.Subtasks,
		CompletedAt:   row.CompletedAt,
		AIEnhanced:    row.AIEnhanced,
		OriginalTitle: row.OriginalTitle,
		UserID:        row.UserID,
	}
	if row.CreatedAt != nil {
		t.CreatedAt = *row.CreatedAt
	}
	if row.DueDate != nil && *row.DueDate != "" {
		if due, err := parseDate(*row.DueDate); err == nil {
			t.DueDate = &due
		}
	}
	return t
}

// parseDate accepts both plain dates and full timestamps, since the
// date column round-trips as "2006-01-02" but older rows carried
// RFC3339 strings.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
