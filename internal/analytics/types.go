package analytics

import "smarttaskai/internal/model"

// CategoryStat is one category's slice of the workload. Categories with
// no tasks are omitted from the summary.
type CategoryStat struct {
	Category       model.Category
	Total          int
	Completed      int
	CompletionRate float64
}

// PriorityStat is one priority level's share of all tasks.
type PriorityStat struct {
	Priority model.Priority
	Count    int
	Percent  float64
}

// EffortBucket is one step of the 1-5 effort scale. All five buckets are
// always present, zero counts included.
type EffortBucket struct {
	Effort int
	Label  string
	Count  int
}

// WeeklyStats counts activity over the trailing 7 days. The two counts
// are independent; a task can appear in both.
type WeeklyStats struct {
	Completed int
	Created   int
}

// Summary is the full set of derived metrics, re-computed from the
// task collection on every request.
type Summary struct {
	TotalTasks     int
	CompletedTasks int
	CompletionRate float64

	Streak  int
	Weekly  WeeklyStats
	Overdue int

	Categories []CategoryStat
	Priorities []PriorityStat

	EffortBuckets      []EffortBucket
	AverageEffort      float64
	AverageEffortLabel string

	MostProductiveCategory string
	NeedsAttention         string
	Recommendations        []string
}

// GetSummaryOutput wraps the summary for the use-case boundary.
type GetSummaryOutput struct {
	Summary Summary
}
