package model

import "time"

// Category classifies what area of life a task belongs to.
type Category string

const (
	CategoryWork          Category = "Work"
	CategoryPersonal      Category = "Personal"
	CategoryHealth        Category = "Health"
	CategoryStudy         Category = "Study"
	CategoryCommunication Category = "Communication"
	CategoryErrands       Category = "Errands"
)

// Categories returns all categories in their fixed display order.
// Derived metrics rely on this order for deterministic tie-breaking.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryHealth,
		CategoryStudy,
		CategoryCommunication,
		CategoryErrands,
	}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth,
		CategoryStudy, CategoryCommunication, CategoryErrands:
		return true
	}
	return false
}

// Priority is the four-level scale used for both priority and urgency.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities returns all priority levels in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// IsValid reports whether p is a known priority level.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// IsHigh reports whether p counts as high priority (High or Critical).
func (p Priority) IsHigh() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// Status is the task lifecycle state.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

const (
	// EffortMin and EffortMax bound the 1-5 subjective effort scale.
	EffortMin = 1
	EffortMax = 5
)

// Subtask is a titled checklist item owned by exactly one Task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is the central entity: a user-owned unit of work.
//
// Invariant: CompletedAt is set if and only if Status == StatusCompleted.
// The invariant is maintained at status-toggle points, not by the store.
type Task struct {
	ID            string
	Title         string
	Description   string
	Category      Category
	Priority      Priority
	Urgency       Priority
	Effort        int
	Status        Status
	DueDate       *time.Time
	Subtasks      []Subtask
	CreatedAt     time.Time
	CompletedAt   *time.Time
	AIEnhanced    bool
	OriginalTitle string
	UserID        string
}

// IsOverdue reports whether the task's due date has passed and the task
// is not completed.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// DueOn reports whether the task is due on the given calendar day,
// ignoring time of day.
func (t Task) DueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FilterAll is the filter value meaning "no restriction on this axis".
const FilterAll = "all"

// Filter holds ephemeral selection criteria. Empty or "all" on an axis
// means that axis does not restrict.
type Filter struct {
	Category string
	Priority string
	Status   string
}

func axisMatches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Matches reports whether the task passes every non-"all" axis.
func (f Filter) Matches(t Task) bool {
	return axisMatches(f.Category, string(t.Category)) &&
		axisMatches(f.Priority, string(t.Priority)) &&
		axisMatches(f.Status, string(t.Status))
}

// ApplyFilter returns the tasks matching f, preserving input order.
func ApplyFilter(tasks []Task, f Filter) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
