package assistant

import "smarttaskai/internal/model"

// Mode selects which assistant feature a suggestion request uses.
type Mode string

const (
	ModeEnhance  Mode = "enhance"
	ModeAnalyze  Mode = "analyze"
	ModeSubtasks Mode = "subtasks"
	ModeHelp     Mode = "help"
)

// IsValid reports whether m is a known suggestion mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeEnhance, ModeAnalyze, ModeSubtasks, ModeHelp:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type SuggestInput struct {
	Mode  Mode
	Input string
}

// CreateTaskInput turns a raw input plus a model response into a task.
type CreateTaskInput struct {
	Input    string
	Response string
}

// --- UseCase Outputs ---

// SuggestOutput carries the model's text verbatim. Degraded is set when
// the model call failed and Response holds the fixed apology line.
// Subtasks holds numbered lines extracted from the response for the
// enhance and subtasks modes.
type SuggestOutput struct {
	Mode     Mode
	Response string
	Subtasks []string
	Degraded bool
}

// InsightsOutput carries the daily planning insights. Degraded is set
// when the model call failed and Insights holds the locally templated
// summary instead.
type InsightsOutput struct {
	Insights string
	Degraded bool
}

type CreateTaskOutput struct {
	Task model.Task
}

// Classification is the coarse triage a Classifier assigns to raw input.
type Classification struct {
	Category model.Category
	Priority model.Priority
	Urgency  model.Priority
}
