package postgrest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smarttaskai/internal/model"
	repo "smarttaskai/internal/task/repository"
	taskRepo "smarttaskai/internal/task/repository/postgrest"
	pkgLog "smarttaskai/pkg/log"
	"smarttaskai/pkg/postgrest"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) (repo.Repository, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	client := postgrest.NewClient(ts.URL, "anon-key")
	return taskRepo.New(client, pkgLog.NewNop()), ts
}

func TestListTasks(t *testing.T) {
	r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if req.URL.Query().Get("user_id") != "eq.user-1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.URL.Query().Get("order") != "created_at.desc" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`[
			{
				"id": "t2",
				"title": "Call bank",
				"category": "Errands",
				"priority": "Medium",
				"urgency": "Low",
				"effort": 1,
				"status": "Todo",
				"due_date": "2026-08-30",
				"subtasks": [],
				"created_at": "2026-08-29T10:00:00Z",
				"completed_at": null,
				"user_id": "user-1"
			},
			{
				"id": "t1",
				"title": "Write report",
				"category": "Work",
				"priority": "High",
				"urgency": "High",
				"effort": 4,
				"status": "Completed",
				"due_date": null,
				"subtasks": [{"id": "s1", "title": "Outline", "completed": true}],
				"created_at": "2026-08-28T09:00:00Z",
				"completed_at": "2026-08-29T08:00:00Z",
				"user_id": "user-1"
			}
		]`))
	})
	defer ts.Close()

	tasks, err := r.ListTasks(context.Background(), repo.ListTasksOptions{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t2" || tasks[1].ID != "t1" {
		t.Errorf("expected store order preserved, got %s, %s", tasks[0].ID, tasks[1].ID)
	}
	if tasks[0].DueDate == nil || tasks[0].DueDate.Format(time.DateOnly) != "2026-08-30" {
		t.Errorf("due_date not mapped: %+v", tasks[0].DueDate)
	}
	if tasks[1].CompletedAt == nil {
		t.Errorf("completed_at not mapped for completed task")
	}
	if len(tasks[1].Subtasks) != 1 || !tasks[1].Subtasks[0].Completed {
		t.Errorf("subtasks not mapped: %+v", tasks[1].Subtasks)
	}
}

func TestGetOneTask_NotFound(t *testing.T) {
	r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer ts.Close()

	got, err := r.GetOneTask(context.Background(), repo.GetOneTaskOptions{ID: "missing", UserID: "user-1"})
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero-value task, got %+v", got)
	}
}

func TestCreateTask(t *testing.T) {
	t.Run("Returns Server Assigned Row", func(t *testing.T) {
		r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
			if req.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			var rows []map[string]interface{}
			json.NewDecoder(req.Body).Decode(&rows)
			if len(rows) != 1 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if _, hasID := rows[0]["id"]; hasID {
				t.Errorf("draft must not carry an id, got %v", rows[0]["id"])
			}
			rows[0]["id"] = "t9"
			rows[0]["created_at"] = "2026-08-29T12:00:00Z"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(rows)
		})
		defer ts.Close()

		created, err := r.CreateTask(context.Background(), repo.CreateTaskOptions{
			Task: model.Task{
				Title:    "Write report",
				Category: model.CategoryWork,
				Priority: model.PriorityHigh,
				Urgency:  model.PriorityHigh,
				Effort:   4,
				Status:   model.StatusTodo,
				UserID:   "user-1",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "t9" {
			t.Errorf("expected server-assigned id, got %q", created.ID)
		}
		if created.CreatedAt.IsZero() {
			t.Errorf("expected server-assigned created_at")
		}
	})

	t.Run("Empty Representation Is An Error", func(t *testing.T) {
		r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[]`))
		})
		defer ts.Close()

		_, err := r.CreateTask(context.Background(), repo.CreateTaskOptions{Task: model.Task{Title: "x", UserID: "user-1"}})
		if err != repo.ErrFailedToInsert {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	var gotBody map[string]interface{}

	r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if req.URL.Query().Get("id") != "eq.t1" || req.URL.Query().Get("user_id") != "eq.user-1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewDecoder(req.Body).Decode(&gotBody)
		w.Write([]byte(`[{"id": "t1"}]`))
	})
	defer ts.Close()

	status := model.StatusCompleted
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	err := r.UpdateTask(context.Background(), repo.UpdateTaskOptions{
		ID:     "t1",
		UserID: "user-1",
		Patch: repo.TaskPatch{
			Status:      &status,
			CompletedAt: &now,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gotBody) != 2 {
		t.Errorf("expected only patched columns in body, got %v", gotBody)
	}
	if gotBody["status"] != "Completed" {
		t.Errorf("status column missing from patch: %v", gotBody)
	}
	if gotBody["completed_at"] != "2026-08-29T12:00:00Z" {
		t.Errorf("completed_at column wrong: %v", gotBody["completed_at"])
	}
}

func TestUpdateTask_ClearCompletedAt(t *testing.T) {
	var raw []byte

	r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		buf := make([]byte, req.ContentLength)
		req.Body.Read(buf)
		raw = buf
		w.Write([]byte(`[{"id": "t1"}]`))
	})
	defer ts.Close()

	status := model.StatusTodo
	err := r.UpdateTask(context.Background(), repo.UpdateTaskOptions{
		ID:     "t1",
		UserID: "user-1",
		Patch:  repo.TaskPatch{Status: &status, ClearCompletedAt: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode patch body: %v", err)
	}
	val, present := body["completed_at"]
	if !present || val != nil {
		t.Errorf("expected explicit null completed_at, got %v (present=%v)", val, present)
	}
}

func TestDeleteTask(t *testing.T) {
	r, ts := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if req.URL.Query().Get("id") != "eq.t1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer ts.Close()

	if err := r.DeleteTask(context.Background(), repo.DeleteTaskOptions{ID: "t1", UserID: "user-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
