package planner

import (
	"fmt"
	"strings"
	"time"

	"smarttaskai/internal/model"
)

const (
	// highPriorityLimit caps the focus list.
	highPriorityLimit = 3
	// heavyWorkloadThreshold triggers the workload warning.
	heavyWorkloadThreshold = 5
	// highEffortFloor marks a task as demanding.
	highEffortFloor = 4
)

// BuildPlan assembles the day plan for date. Pure: no I/O, deterministic
// for a fixed now.
func BuildPlan(tasks []model.Task, date time.Time, now time.Time) Plan {
	dayTasks := make([]PlannedTask, 0)
	for _, t := range tasks {
		if !t.DueOn(date) {
			continue
		}
		dayTasks = append(dayTasks, PlannedTask{Task: t, BestTime: TimeRecommendation(t)})
	}

	highPriority := make([]model.Task, 0, highPriorityLimit)
	for _, t := range tasks {
		if !t.Priority.IsHigh() || t.Status == model.StatusCompleted {
			continue
		}
		highPriority = append(highPriority, t)
		if len(highPriority) == highPriorityLimit {
			break
		}
	}

	overdue := make([]model.Task, 0)
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}

	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	return Plan{
		Date:            date,
		IsToday:         y1 == y2 && m1 == m2 && d1 == d2,
		Tasks:           dayTasks,
		HighPriority:    highPriority,
		Overdue:         overdue,
		Recommendations: buildRecommendations(dayTasks, highPriority, overdue),
	}
}

// TimeRecommendation suggests a time-of-day slot from the task's
// category and effort.
func TimeRecommendation(t model.Task) string {
	category := strings.ToLower(string(t.Category))

	switch {
	case strings.Contains(category, "work") || strings.Contains(category, "study"):
		if t.Effort >= highEffortFloor {
			return "Morning (High Focus)"
		}
		return "Morning/Afternoon"
	case strings.Contains(category, "communication"):
		return "Business Hours"
	case strings.Contains(category, "health") || strings.Contains(category, "exercise"):
		return "Morning/Evening"
	default:
		if t.Effort >= highEffortFloor {
			return "When Energy is High"
		}
		return "Flexible"
	}
}

// buildRecommendations emits advice cards in a fixed order and never
// returns an empty list.
func buildRecommendations(dayTasks []PlannedTask, highPriority []model.Task, overdue []model.Task) []Recommendation {
	recs := []Recommendation{}

	if len(overdue) > 0 {
		recs = append(recs, Recommendation{
			Type:        "urgent",
			Title:       "Address Overdue Tasks",
			Description: fmt.Sprintf("You have %d overdue tasks. Consider rescheduling or completing them first.", len(overdue)),
		})
	}

	if len(dayTasks) > heavyWorkloadThreshold {
		recs = append(recs, Recommendation{
			Type:        "workload",
			Title:       "Heavy Workload Today",
			Description: "Consider rescheduling non-urgent tasks to maintain quality and avoid burnout.",
		})
	}

	if len(highPriority) > 0 {
		recs = append(recs, Recommendation{
			Type:        "priority",
			Title:       "Focus on High Priority",
			Description: fmt.Sprintf("Start with %q during your peak energy hours.", highPriority[0].Title),
		})
	}

	for _, pt := range dayTasks {
		if pt.Task.Effort >= highEffortFloor {
			recs = append(recs, Recommendation{
				Type:        "energy",
				Title:       "Schedule Demanding Tasks Early",
				Description: "Tackle high-effort tasks when your energy and focus are at their peak.",
			})
			break
		}
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type:        "positive",
			Title:       "Well Balanced Day",
			Description: "Your schedule looks manageable. Great job on task planning!",
		})
	}

	return recs
}
