package assistant_test

import (
	"strings"
	"testing"
	"time"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/model"
)

func TestExtractSubtasks(t *testing.T) {
	t.Run("Numbered Lines In Order", func(t *testing.T) {
		got := assistant.ExtractSubtasks("1. Buy milk\n2. Call bank\nNotes: done")
		if len(got) != 2 {
			t.Fatalf("expected exactly 2 subtasks, got %v", got)
		}
		if got[0] != "Buy milk" || got[1] != "Call bank" {
			t.Errorf("wrong order or content: %v", got)
		}
	})

	t.Run("Unnumbered Text Yields None", func(t *testing.T) {
		got := assistant.ExtractSubtasks("First buy milk.\nThen call the bank.\n- bullet point")
		if len(got) != 0 {
			t.Errorf("expected no subtasks, got %v", got)
		}
	})

	t.Run("Indented Numbers Do Not Match", func(t *testing.T) {
		got := assistant.ExtractSubtasks("  1. Indented\n10. Double digits work")
		if len(got) != 1 || got[0] != "Double digits work" {
			t.Errorf("expected only the unindented line, got %v", got)
		}
	})
}

func TestKeywordClassifier(t *testing.T) {
	classifier := assistant.NewKeywordClassifier()

	t.Run("Defaults To Personal Medium", func(t *testing.T) {
		c := classifier.Classify("Buy groceries")
		if c.Category != model.CategoryPersonal || c.Priority != model.PriorityMedium || c.Urgency != model.PriorityMedium {
			t.Errorf("unexpected classification: %+v", c)
		}
	})

	t.Run("Work Keyword", func(t *testing.T) {
		c := classifier.Classify("Finish the WORK presentation")
		if c.Category != model.CategoryWork {
			t.Errorf("expected Work, got %s", c.Category)
		}
	})

	t.Run("Urgent Keyword Raises Both Levels", func(t *testing.T) {
		c := classifier.Classify("urgent: renew passport")
		if c.Priority != model.PriorityHigh || c.Urgency != model.PriorityHigh {
			t.Errorf("expected High/High, got %+v", c)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := assistant.BuildPrompt(assistant.ModeEnhance, "Fix website bugs")
	if !strings.Contains(prompt, `enhance this vague task: "Fix website bugs"`) {
		t.Errorf("input not embedded: %s", prompt)
	}
	if !strings.Contains(prompt, "Format your response clearly with sections.") {
		t.Errorf("template tail missing")
	}
}

func TestTaskSummary(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	due := now.Add(2 * time.Hour)
	tasks := []model.Task{
		{Title: "Write report", Category: model.CategoryWork, Priority: model.PriorityHigh, Status: model.StatusTodo, DueDate: &due},
		{Title: "Morning run", Category: model.CategoryHealth, Priority: model.PriorityLow, Status: model.StatusCompleted},
	}

	summary := assistant.TaskSummary(tasks, now)
	for _, want := range []string{
		"- Total tasks: 2",
		"- Completed: 1",
		"- High priority pending: 1",
		"- Due today: 1",
		"Recent tasks: Write report (Work, High), Morning run (Health, Low)",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestLocalInsights(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	insights := assistant.LocalInsights(nil, now)
	if !strings.HasPrefix(insights, "Daily Planning Insights:") {
		t.Errorf("unexpected fallback header: %s", insights)
	}
	if !strings.Contains(insights, "You have 0 tasks due today") {
		t.Errorf("fallback missing counts: %s", insights)
	}
	if strings.Contains(insights, "Sorry") {
		t.Errorf("fallback must not be an apology")
	}
}
