package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/model"
	"smarttaskai/internal/task"
	taskRepo "smarttaskai/internal/task/repository"
	pkgLog "smarttaskai/pkg/log"
)

type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return m.generateFunc(ctx, prompt)
}

type mockTaskRepository struct {
	listTasksFunc func(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error)
}

func (m *mockTaskRepository) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	return m.listTasksFunc(ctx, opt)
}

func (m *mockTaskRepository) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, opt taskRepo.UpdateTaskOptions) error {
	return nil
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, opt taskRepo.DeleteTaskOptions) error {
	return nil
}

type mockTaskUseCase struct {
	task.UseCase
	createFunc func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error)
}

func (m *mockTaskUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	return m.createFunc(ctx, sc, input)
}

var testScope = model.Scope{UserID: "user-1", Email: "user@example.com"}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires Scope", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockGenerator{}, &mockTaskRepository{}, nil)
		_, err := uc.Suggest(ctx, model.Scope{}, assistant.SuggestInput{Mode: assistant.ModeHelp, Input: "x"})
		if err != assistant.ErrNoUser {
			t.Errorf("expected ErrNoUser, got %v", err)
		}
	})

	t.Run("Rejects Unknown Mode", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockGenerator{}, &mockTaskRepository{}, nil)
		_, err := uc.Suggest(ctx, testScope, assistant.SuggestInput{Mode: "summarize", Input: "x"})
		if err != assistant.ErrUnknownMode {
			t.Errorf("expected ErrUnknownMode, got %v", err)
		}
	})

	t.Run("Rejects Blank Input", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockGenerator{}, &mockTaskRepository{}, nil)
		_, err := uc.Suggest(ctx, testScope, assistant.SuggestInput{Mode: assistant.ModeEnhance, Input: "   "})
		if err != assistant.ErrEmptyInput {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Returns Model Text Verbatim", func(t *testing.T) {
		var gotPrompt string
		gen := &mockGenerator{generateFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "Here is my analysis.", nil
		}}
		uc := New(pkgLog.NewNop(), gen, &mockTaskRepository{}, nil)

		out, err := uc.Suggest(ctx, testScope, assistant.SuggestInput{Mode: assistant.ModeAnalyze, Input: "Plan the trip"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Here is my analysis." || out.Degraded {
			t.Errorf("unexpected output: %+v", out)
		}
		if !strings.Contains(gotPrompt, `"Plan the trip"`) {
			t.Errorf("input missing from prompt: %s", gotPrompt)
		}
		if out.Subtasks != nil {
			t.Errorf("analyze mode must not extract subtasks")
		}
	})

	t.Run("Extracts Subtasks For Subtasks Mode", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "1. Outline chapters\n2. Draft intro\nGood luck!", nil
		}}
		uc := New(pkgLog.NewNop(), gen, &mockTaskRepository{}, nil)

		out, err := uc.Suggest(ctx, testScope, assistant.SuggestInput{Mode: assistant.ModeSubtasks, Input: "Write thesis"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 2 || out.Subtasks[0] != "Outline chapters" {
			t.Errorf("unexpected subtasks: %v", out.Subtasks)
		}
	})

	t.Run("Model Failure Degrades To Apology", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("boom")
		}}
		uc := New(pkgLog.NewNop(), gen, &mockTaskRepository{}, nil)

		out, err := uc.Suggest(ctx, testScope, assistant.SuggestInput{Mode: assistant.ModeSubtasks, Input: "Write thesis"})
		if err != nil {
			t.Fatalf("degraded suggest must not error, got %v", err)
		}
		if !out.Degraded {
			t.Errorf("expected Degraded set")
		}
		if out.Response != "Sorry, I encountered an error while generating subtasks. Please try again." {
			t.Errorf("unexpected apology: %q", out.Response)
		}
		if len(out.Subtasks) != 0 {
			t.Errorf("apology must not yield subtasks: %v", out.Subtasks)
		}
	})
}

func TestInsights(t *testing.T) {
	ctx := context.Background()
	due := mustTime("2026-08-29T10:00:00Z")
	tasks := []model.Task{
		{Title: "Write report", Category: model.CategoryWork, Priority: model.PriorityHigh, Status: model.StatusTodo, DueDate: &due},
	}
	repo := &mockTaskRepository{listTasksFunc: func(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
		return tasks, nil
	}}

	t.Run("Embeds Summary In Prompt", func(t *testing.T) {
		var gotPrompt string
		gen := &mockGenerator{generateFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "Focus on the report first.", nil
		}}
		uc := New(pkgLog.NewNop(), gen, repo, nil)
		uc.SetNow(func() time.Time { return mustTime("2026-08-29T12:00:00Z") })

		out, err := uc.Insights(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Insights != "Focus on the report first." || out.Degraded {
			t.Errorf("unexpected output: %+v", out)
		}
		if !strings.Contains(gotPrompt, "- Total tasks: 1") {
			t.Errorf("summary missing from prompt: %s", gotPrompt)
		}
	})

	t.Run("Model Failure Degrades To Local Summary", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		}}
		uc := New(pkgLog.NewNop(), gen, repo, nil)
		uc.SetNow(func() time.Time { return mustTime("2026-08-29T12:00:00Z") })

		out, err := uc.Insights(ctx, testScope)
		if err != nil {
			t.Fatalf("degraded insights must not error, got %v", err)
		}
		if !out.Degraded {
			t.Errorf("expected Degraded set")
		}
		if !strings.Contains(out.Insights, "You have 1 tasks due today") {
			t.Errorf("local summary missing counts: %s", out.Insights)
		}
		if !strings.Contains(out.Insights, "1 high-priority tasks need attention") {
			t.Errorf("local summary missing high-priority count: %s", out.Insights)
		}
	})
}

func TestCreateTaskFromResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("Builds Draft Through Task UseCase", func(t *testing.T) {
		var gotInput task.CreateTaskInput
		taskUC := &mockTaskUseCase{createFunc: func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
			gotInput = input
			return task.CreateTaskOutput{Task: model.Task{ID: "t1", Title: input.Title}}, nil
		}}
		uc := New(pkgLog.NewNop(), &mockGenerator{}, &mockTaskRepository{}, taskUC)

		out, err := uc.CreateTaskFromResponse(ctx, testScope, assistant.CreateTaskInput{
			Input:    "urgent work deadline",
			Response: "1. Review notes\n2. Draft summary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID != "t1" {
			t.Errorf("expected stored task back, got %+v", out.Task)
		}
		if gotInput.Category != model.CategoryWork || gotInput.Priority != model.PriorityHigh || gotInput.Urgency != model.PriorityHigh {
			t.Errorf("classification wrong: %+v", gotInput)
		}
		if gotInput.Effort != 3 || gotInput.Status != model.StatusTodo {
			t.Errorf("fixed fields wrong: %+v", gotInput)
		}
		if !gotInput.AIEnhanced || gotInput.OriginalTitle != "urgent work deadline" {
			t.Errorf("provenance fields wrong: %+v", gotInput)
		}
		if len(gotInput.Subtasks) != 2 || gotInput.Subtasks[1].Title != "Draft summary" {
			t.Errorf("subtasks wrong: %+v", gotInput.Subtasks)
		}
	})

	t.Run("Rejects Blank Input", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockGenerator{}, &mockTaskRepository{}, &mockTaskUseCase{})
		_, err := uc.CreateTaskFromResponse(ctx, testScope, assistant.CreateTaskInput{Input: " ", Response: "1. x"})
		if err != assistant.ErrEmptyCreate {
			t.Errorf("expected ErrEmptyCreate, got %v", err)
		}
	})
}
