package http

import (
	"smarttaskai/internal/analytics"
)

// --- Response DTOs ---

type categoryStatResp struct {
	Category       string  `json:"category"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type priorityStatResp struct {
	Priority string  `json:"priority"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type effortBucketResp struct {
	Effort int    `json:"effort"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type weeklyResp struct {
	Completed int `json:"completed"`
	Created   int `json:"created"`
}

type summaryResp struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`

	Streak  int        `json:"streak"`
	Weekly  weeklyResp `json:"weekly"`
	Overdue int        `json:"overdue"`

	Categories []categoryStatResp `json:"categories"`
	Priorities []priorityStatResp `json:"priorities"`

	EffortBuckets      []effortBucketResp `json:"effort_buckets"`
	AverageEffort      float64            `json:"average_effort"`
	AverageEffortLabel string             `json:"average_effort_label"`

	MostProductiveCategory string   `json:"most_productive_category"`
	NeedsAttention         string   `json:"needs_attention"`
	Recommendations        []string `json:"recommendations"`
}

func (h *handler) newSummaryResp(out analytics.GetSummaryOutput) summaryResp {
	s := out.Summary

	categories := make([]categoryStatResp, len(s.Categories))
	for i, stat := range s.Categories {
		categories[i] = categoryStatResp{
			Category:       string(stat.Category),
			Total:          stat.Total,
			Completed:      stat.Completed,
			CompletionRate: stat.CompletionRate,
		}
	}

	priorities := make([]priorityStatResp, len(s.Priorities))
	for i, stat := range s.Priorities {
		priorities[i] = priorityStatResp{
			Priority: string(stat.Priority),
			Count:    stat.Count,
			Percent:  stat.Percent,
		}
	}

	buckets := make([]effortBucketResp, len(s.EffortBuckets))
	for i, bucket := range s.EffortBuckets {
		buckets[i] = effortBucketResp{Effort: bucket.Effort, Label: bucket.Label, Count: bucket.Count}
	}

	return summaryResp{
		TotalTasks:     s.TotalTasks,
		CompletedTasks: s.CompletedTasks,
		CompletionRate: s.CompletionRate,

		Streak:  s.Streak,
		Weekly:  weeklyResp{Completed: s.Weekly.Completed, Created: s.Weekly.Created},
		Overdue: s.Overdue,

		Categories: categories,
		Priorities: priorities,

		EffortBuckets:      buckets,
		AverageEffort:      s.AverageEffort,
		AverageEffortLabel: s.AverageEffortLabel,

		MostProductiveCategory: s.MostProductiveCategory,
		NeedsAttention:         s.NeedsAttention,
		Recommendations:        s.Recommendations,
	}
}
