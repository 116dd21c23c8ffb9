package analytics

import (
	"fmt"
	"math"
	"time"

	"smarttaskai/internal/model"
)

// streakWindowDays caps the completion-streak walk.
const streakWindowDays = 30

var effortLabels = []string{"", "Very Easy", "Easy", "Medium", "Hard", "Very Hard"}

// EffortLabel names one step of the 1-5 effort scale.
func EffortLabel(effort int) string {
	if effort < 1 || effort >= len(effortLabels) {
		return "Unknown"
	}
	return effortLabels[effort]
}

// Compute derives the full metrics summary from a task collection.
// Pure: no I/O, deterministic for a fixed now.
func Compute(tasks []model.Task, now time.Time) Summary {
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}

	completionRate := 0.0
	if total > 0 {
		completionRate = float64(completed) / float64(total) * 100
	}

	streak := completionStreak(tasks, now)
	overdue := overdueCount(tasks, now)
	avgEffort := averageEffort(tasks)

	s := Summary{
		TotalTasks:     total,
		CompletedTasks: completed,
		CompletionRate: completionRate,

		Streak:  streak,
		Weekly:  weeklyStats(tasks, now),
		Overdue: overdue,

		Categories: categoryStats(tasks),
		Priorities: priorityStats(tasks, total),

		EffortBuckets:      effortBuckets(tasks),
		AverageEffort:      avgEffort,
		AverageEffortLabel: EffortLabel(int(math.Round(avgEffort))),
	}

	s.MostProductiveCategory = mostProductiveCategory(s.Categories)
	s.NeedsAttention = needsAttention(overdue)
	s.Recommendations = recommendations(completionRate, overdue, avgEffort, streak)

	return s
}

// completionStreak walks backwards from today, one calendar day at a
// time, while at least one task was completed on that day.
func completionStreak(tasks []model.Task, now time.Time) int {
	streak := 0
	day := now
	for streak < streakWindowDays {
		if !anyCompletedOn(tasks, day) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func anyCompletedOn(tasks []model.Task, day time.Time) bool {
	y, m, d := day.Date()
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		cy, cm, cd := t.CompletedAt.Date()
		if cy == y && cm == m && cd == d {
			return true
		}
	}
	return false
}

func overdueCount(tasks []model.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.IsOverdue(now) {
			count++
		}
	}
	return count
}

// weeklyStats counts completions and creations over the trailing 7 days
// independently.
func weeklyStats(tasks []model.Task, now time.Time) WeeklyStats {
	weekAgo := now.AddDate(0, 0, -7)

	var stats WeeklyStats
	for _, t := range tasks {
		if t.CompletedAt != nil && !t.CompletedAt.Before(weekAgo) {
			stats.Completed++
		}
		if !t.CreatedAt.Before(weekAgo) {
			stats.Created++
		}
	}
	return stats
}

// categoryStats walks categories in their fixed enum order so ties
// resolve deterministically downstream. Empty categories are dropped.
func categoryStats(tasks []model.Task) []CategoryStat {
	stats := make([]CategoryStat, 0, len(model.Categories()))
	for _, category := range model.Categories() {
		stat := CategoryStat{Category: category}
		for _, t := range tasks {
			if t.Category != category {
				continue
			}
			stat.Total++
			if t.Status == model.StatusCompleted {
				stat.Completed++
			}
		}
		if stat.Total == 0 {
			continue
		}
		stat.CompletionRate = float64(stat.Completed) / float64(stat.Total) * 100
		stats = append(stats, stat)
	}
	return stats
}

func priorityStats(tasks []model.Task, total int) []PriorityStat {
	stats := make([]PriorityStat, 0, len(model.Priorities()))
	for _, priority := range model.Priorities() {
		count := 0
		for _, t := range tasks {
			if t.Priority == priority {
				count++
			}
		}
		if count == 0 {
			continue
		}
		percent := 0.0
		if total > 0 {
			percent = float64(count) / float64(total) * 100
		}
		stats = append(stats, PriorityStat{Priority: priority, Count: count, Percent: percent})
	}
	return stats
}

func effortBuckets(tasks []model.Task) []EffortBucket {
	buckets := make([]EffortBucket, 0, model.EffortMax)
	for effort := model.EffortMin; effort <= model.EffortMax; effort++ {
		count := 0
		for _, t := range tasks {
			if t.Effort == effort {
				count++
			}
		}
		buckets = append(buckets, EffortBucket{Effort: effort, Label: EffortLabel(effort), Count: count})
	}
	return buckets
}

func averageEffort(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	sum := 0
	for _, t := range tasks {
		sum += t.Effort
	}
	return float64(sum) / float64(len(tasks))
}

// mostProductiveCategory picks the highest completion ratio. A category
// only wins with a strictly greater ratio, so zero-ratio categories
// never displace "None" and the first (enum-order) category keeps ties.
func mostProductiveCategory(stats []CategoryStat) string {
	best := "None"
	bestRate := 0.0
	for _, stat := range stats {
		rate := 0.0
		if stat.Total > 0 {
			rate = float64(stat.Completed) / float64(stat.Total)
		}
		if rate > bestRate {
			best = string(stat.Category)
			bestRate = rate
		}
	}
	return best
}

func needsAttention(overdue int) string {
	if overdue > 0 {
		return fmt.Sprintf("%d overdue tasks", overdue)
	}
	return "All tasks on track!"
}

// recommendations emits advice lines in a fixed order based on simple
// thresholds over the derived metrics.
func recommendations(completionRate float64, overdue int, avgEffort float64, streak int) []string {
	recs := []string{}
	if completionRate < 50 {
		recs = append(recs, "Focus on completing existing tasks before adding new ones")
	}
	if overdue > 0 {
		recs = append(recs, "Prioritize overdue tasks to get back on track")
	}
	if avgEffort > 4 {
		recs = append(recs, "Consider breaking down complex tasks into smaller steps")
	}
	if streak == 0 {
		recs = append(recs, "Start a completion streak by finishing one task today")
	} else {
		recs = append(recs, fmt.Sprintf("Great job on your %d-day streak! Keep it up!", streak))
	}
	return recs
}
