package postgrest

import (
	"context"
	"encoding/json"
	"time"

	"smarttaskai/internal/model"
	repo "smarttaskai/internal/task/repository"
	"smarttaskai/pkg/postgrest"
)

// ListTasks fetches all rows owned by the user, ordered by creation
// time descending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	raw, err := r.client.Select(ctx, tasksTable, postgrest.Query{
		Eq:    map[string]string{"user_id": opt.UserID},
		Order: "created_at.desc",
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []taskRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// GetOneTask retrieves a single task by id scoped to the user.
// Returns zero-value Task (ID == "") when not found, never an error
// for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	raw, err := r.client.Select(ctx, tasksTable, postgrest.Query{
		Eq: map[string]string{"id": opt.ID, "user_id": opt.UserID},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	var rows []taskRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	if len(rows) == 0 {
		return model.Task{}, nil
	}
	return rows[0].toModel(), nil
}

// CreateTask inserts a draft row and returns the stored representation.
// A write that succeeds but returns no row is treated as a failure.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	raw, err := r.client.Insert(ctx, tasksTable, []taskRow{newTaskRow(opt.Task)})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	var rows []taskRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if len(rows) == 0 {
		r.l.Errorf(ctx, "%s: insert returned no row", r.dsn("CreateTask"))
		return model.Task{}, repo.ErrFailedToInsert
	}
	return rows[0].toModel(), nil
}

// UpdateTask patches only the fields set on opt.Patch, scoped to id and
// user.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) error {
	body := patchBody(opt.Patch)
	if len(body) == 0 {
		return nil
	}

	_, err := r.client.Update(ctx, tasksTable, postgrest.Query{
		Eq: map[string]string{"id": opt.ID, "user_id": opt.UserID},
	}, body)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask removes the row scoped to id and user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	err := r.client.Delete(ctx, tasksTable, postgrest.Query{
		Eq: map[string]string{"id": opt.ID, "user_id": opt.UserID},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// patchBody compiles a TaskPatch into the partial snake_case column map
// sent to the store.
func patchBody(p repo.TaskPatch) map[string]interface{} {
	body := map[string]interface{}{}
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.Description != nil {
		body["description"] = *p.Description
	}
	if p.Category != nil {
		body["category"] = string(*p.Category)
	}
	if p.Priority != nil {
		body["priority"] = string(*p.Priority)
	}
	if p.Urgency != nil {
		body["urgency"] = string(*p.Urgency)
	}
	if p.Effort != nil {
		body["effort"] = *p.Effort
	}
	if p.Status != nil {
		body["status"] = string(*p.Status)
	}
	if p.ClearDueDate {
		body["due_date"] = nil
	} else if p.DueDate != nil {
		body["due_date"] = p.DueDate.Format(time.DateOnly)
	}
	if p.ClearCompletedAt {
		body["completed_at"] = nil
	} else if p.CompletedAt != nil {
		body["completed_at"] = p.CompletedAt.Format(time.RFC3339)
	}
	if p.Subtasks != nil {
		body["subtasks"] = *p.Subtasks
	}
	return body
}
