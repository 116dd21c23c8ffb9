package analytics_test

import (
	"testing"
	"time"

	"smarttaskai/internal/analytics"
	"smarttaskai/internal/model"
)

var now = time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

func completedTask(category model.Category, completedAt time.Time) model.Task {
	return model.Task{
		Category:    category,
		Priority:    model.PriorityMedium,
		Effort:      3,
		Status:      model.StatusCompleted,
		CompletedAt: &completedAt,
		CreatedAt:   completedAt.AddDate(0, 0, -1),
	}
}

func pendingTask(category model.Category) model.Task {
	return model.Task{
		Category:  category,
		Priority:  model.PriorityMedium,
		Effort:    3,
		Status:    model.StatusTodo,
		CreatedAt: now.AddDate(0, 0, -1),
	}
}

func TestCompletionRate(t *testing.T) {
	t.Run("Empty Collection Is Zero", func(t *testing.T) {
		s := analytics.Compute(nil, now)
		if s.CompletionRate != 0 {
			t.Errorf("expected 0, got %v", s.CompletionRate)
		}
	})

	t.Run("Stays Within Bounds", func(t *testing.T) {
		tasks := []model.Task{
			completedTask(model.CategoryWork, now),
			completedTask(model.CategoryWork, now),
			pendingTask(model.CategoryWork),
			pendingTask(model.CategoryWork),
		}
		s := analytics.Compute(tasks, now)
		if s.CompletionRate != 50 {
			t.Errorf("expected 50, got %v", s.CompletionRate)
		}
		if s.CompletionRate < 0 || s.CompletionRate > 100 {
			t.Errorf("rate out of bounds: %v", s.CompletionRate)
		}
	})
}

func TestCompletionStreak(t *testing.T) {
	t.Run("Today And Yesterday Is Two", func(t *testing.T) {
		tasks := []model.Task{
			completedTask(model.CategoryWork, now.Add(-time.Hour)),
			completedTask(model.CategoryWork, now.AddDate(0, 0, -1)),
		}
		s := analytics.Compute(tasks, now)
		if s.Streak != 2 {
			t.Errorf("expected streak 2, got %d", s.Streak)
		}
	})

	t.Run("Yesterday Only Is Zero", func(t *testing.T) {
		tasks := []model.Task{
			completedTask(model.CategoryWork, now.AddDate(0, 0, -1)),
		}
		s := analytics.Compute(tasks, now)
		if s.Streak != 0 {
			t.Errorf("expected streak 0, got %d", s.Streak)
		}
	})

	t.Run("Caps At Thirty Days", func(t *testing.T) {
		tasks := make([]model.Task, 0, 45)
		for i := 0; i < 45; i++ {
			tasks = append(tasks, completedTask(model.CategoryWork, now.AddDate(0, 0, -i)))
		}
		s := analytics.Compute(tasks, now)
		if s.Streak != 30 {
			t.Errorf("expected streak capped at 30, got %d", s.Streak)
		}
	})
}

func TestOverdue(t *testing.T) {
	due := now.AddDate(0, 0, -2)

	t.Run("Past Due And Pending Counts", func(t *testing.T) {
		task := pendingTask(model.CategoryWork)
		task.DueDate = &due
		s := analytics.Compute([]model.Task{task}, now)
		if s.Overdue != 1 {
			t.Errorf("expected 1 overdue, got %d", s.Overdue)
		}
		if s.NeedsAttention != "1 overdue tasks" {
			t.Errorf("unexpected attention line: %q", s.NeedsAttention)
		}
	})

	t.Run("Completed Tasks Never Overdue", func(t *testing.T) {
		task := completedTask(model.CategoryWork, now)
		task.DueDate = &due
		s := analytics.Compute([]model.Task{task}, now)
		if s.Overdue != 0 {
			t.Errorf("expected 0 overdue, got %d", s.Overdue)
		}
		if s.NeedsAttention != "All tasks on track!" {
			t.Errorf("unexpected attention line: %q", s.NeedsAttention)
		}
	})
}

func TestWeeklyStats(t *testing.T) {
	inside := completedTask(model.CategoryWork, now.AddDate(0, 0, -3))
	outside := completedTask(model.CategoryWork, now.AddDate(0, 0, -10))
	outside.CreatedAt = now.AddDate(0, 0, -20)

	s := analytics.Compute([]model.Task{inside, outside}, now)
	if s.Weekly.Completed != 1 {
		t.Errorf("expected 1 completed this week, got %d", s.Weekly.Completed)
	}
	if s.Weekly.Created != 1 {
		t.Errorf("expected 1 created this week, got %d", s.Weekly.Created)
	}
}

func TestMostProductiveCategory(t *testing.T) {
	t.Run("No Completions Is None", func(t *testing.T) {
		s := analytics.Compute([]model.Task{pendingTask(model.CategoryWork)}, now)
		if s.MostProductiveCategory != "None" {
			t.Errorf("expected None, got %q", s.MostProductiveCategory)
		}
	})

	t.Run("Highest Ratio Wins", func(t *testing.T) {
		tasks := []model.Task{
			completedTask(model.CategoryHealth, now),
			completedTask(model.CategoryWork, now),
			pendingTask(model.CategoryWork),
		}
		s := analytics.Compute(tasks, now)
		if s.MostProductiveCategory != "Health" {
			t.Errorf("expected Health, got %q", s.MostProductiveCategory)
		}
	})

	t.Run("Ties Resolve By Enum Order", func(t *testing.T) {
		tasks := []model.Task{
			completedTask(model.CategoryErrands, now),
			completedTask(model.CategoryPersonal, now),
		}
		s := analytics.Compute(tasks, now)
		if s.MostProductiveCategory != "Personal" {
			t.Errorf("expected Personal, got %q", s.MostProductiveCategory)
		}
	})
}

func TestEffortAnalysis(t *testing.T) {
	hard := pendingTask(model.CategoryWork)
	hard.Effort = 5
	easy := pendingTask(model.CategoryWork)
	easy.Effort = 1

	s := analytics.Compute([]model.Task{hard, easy}, now)
	if s.AverageEffort != 3 {
		t.Errorf("expected average 3, got %v", s.AverageEffort)
	}
	if s.AverageEffortLabel != "Medium" {
		t.Errorf("expected Medium, got %q", s.AverageEffortLabel)
	}
	if len(s.EffortBuckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(s.EffortBuckets))
	}
	if s.EffortBuckets[0].Count != 1 || s.EffortBuckets[4].Count != 1 {
		t.Errorf("buckets wrong: %+v", s.EffortBuckets)
	}
	if s.EffortBuckets[4].Label != "Very Hard" {
		t.Errorf("expected Very Hard, got %q", s.EffortBuckets[4].Label)
	}
}

func TestRecommendations(t *testing.T) {
	t.Run("Low Completion And No Streak", func(t *testing.T) {
		s := analytics.Compute([]model.Task{pendingTask(model.CategoryWork)}, now)
		want := []string{
			"Focus on completing existing tasks before adding new ones",
			"Start a completion streak by finishing one task today",
		}
		if len(s.Recommendations) != len(want) {
			t.Fatalf("expected %d recommendations, got %v", len(want), s.Recommendations)
		}
		for i, rec := range want {
			if s.Recommendations[i] != rec {
				t.Errorf("recommendation %d: got %q, want %q", i, s.Recommendations[i], rec)
			}
		}
	})

	t.Run("Active Streak Is Praised", func(t *testing.T) {
		tasks := []model.Task{
			completedTask(model.CategoryWork, now),
			completedTask(model.CategoryWork, now.AddDate(0, 0, -1)),
		}
		s := analytics.Compute(tasks, now)
		last := s.Recommendations[len(s.Recommendations)-1]
		if last != "Great job on your 2-day streak! Keep it up!" {
			t.Errorf("unexpected streak praise: %q", last)
		}
	})

	t.Run("Never Empty", func(t *testing.T) {
		s := analytics.Compute(nil, now)
		if len(s.Recommendations) == 0 {
			t.Errorf("expected at least one recommendation")
		}
	})
}
