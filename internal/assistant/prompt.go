package assistant

import (
	"fmt"
	"strings"
	"time"

	"smarttaskai/internal/model"
)

// Prompt templates. The wording is part of the product surface; keep it
// stable, downstream behavior (subtask extraction) depends on the
// numbered-list instruction.

const enhancePrompt = `As a task management AI assistant, enhance this vague task: "%s"

Please provide:
1. A clarified, actionable version of the task
2. Suggested breakdown into specific steps
3. Recommended category (Work, Personal, Health, Study, Communication, Errands)
4. Priority level (Low, Medium, High, Critical) with reasoning
5. Estimated effort level (1-5 scale)
6. Optimal timing suggestions

Format your response clearly with sections.`

const analyzePrompt = `Analyze this task for smart categorization and scheduling: "%s"

Please provide:
1. Category classification (Work, Personal, Health, Study, Communication, Errands) with reasoning
2. Urgency assessment (Low, Medium, High, Critical) based on context clues
3. Optimal timing recommendations (morning, afternoon, evening) based on task type
4. Energy level requirements and focus needed
5. Dependencies or prerequisites
6. Potential obstacles and how to overcome them

Be specific and actionable in your analysis.`

const subtasksPrompt = `Break down this complex task into specific, actionable subtasks: "%s"

Please provide:
1. A numbered list of 4-8 specific subtasks
2. Each subtask should be clear and actionable
3. Order them logically (what needs to be done first, second, etc.)
4. Include time estimates for each subtask if possible
5. Note any dependencies between subtasks

Make sure each subtask is something that can be completed in one focused session.`

const helpPrompt = `Provide comprehensive help and guidance for this task: "%s"

Please include:
1. Step-by-step approach or methodology
2. Best practices and tips
3. Common pitfalls to avoid
4. Resources or tools that might be helpful
5. Templates or examples if applicable
6. Quality checkpoints to ensure good results

Be practical and actionable in your advice.`

const insightsPrompt = `Based on this task summary, provide daily planning insights and recommendations:

%s

Please provide:
1. Today's focus priorities
2. Workload assessment
3. Specific recommendations for task ordering
4. Energy management tips
5. Productivity suggestions
6. Motivational insights

Keep it concise but actionable.`

var modePrompts = map[Mode]string{
	ModeEnhance:  enhancePrompt,
	ModeAnalyze:  analyzePrompt,
	ModeSubtasks: subtasksPrompt,
	ModeHelp:     helpPrompt,
}

// Fixed apology lines returned when the model call fails.
var modeApologies = map[Mode]string{
	ModeEnhance:  "Sorry, I encountered an error while processing your request. Please try again.",
	ModeAnalyze:  "Sorry, I encountered an error while analyzing your task. Please try again.",
	ModeSubtasks: "Sorry, I encountered an error while generating subtasks. Please try again.",
	ModeHelp:     "Sorry, I encountered an error while generating help. Please try again.",
}

// BuildPrompt embeds the raw input into the mode's template. The input
// is not sanitized; it is forwarded verbatim.
func BuildPrompt(mode Mode, input string) string {
	return fmt.Sprintf(modePrompts[mode], input)
}

// Apology returns the mode's fixed failure line.
func Apology(mode Mode) string {
	return modeApologies[mode]
}

// BuildInsightsPrompt embeds a task summary into the insights template.
func BuildInsightsPrompt(taskSummary string) string {
	return fmt.Sprintf(insightsPrompt, taskSummary)
}

const recentTasksLimit = 5

// TaskSummary renders the compact task digest embedded in the insights
// prompt and reused by the local fallback.
func TaskSummary(tasks []model.Task, now time.Time) string {
	recent := make([]string, 0, recentTasksLimit)
	for i, t := range tasks {
		if i == recentTasksLimit {
			break
		}
		recent = append(recent, fmt.Sprintf("%s (%s, %s)", t.Title, t.Category, t.Priority))
	}

	return fmt.Sprintf(`
Current tasks summary:
- Total tasks: %d
- Completed: %d
- High priority pending: %d
- Due today: %d

Recent tasks: %s
`,
		len(tasks),
		countCompleted(tasks),
		countHighPriorityPending(tasks),
		countDueToday(tasks, now),
		strings.Join(recent, ", "))
}

// LocalInsights is the templated fallback shown when the model is
// unreachable. Not an apology: it still carries real numbers.
func LocalInsights(tasks []model.Task, now time.Time) string {
	return fmt.Sprintf(`Daily Planning Insights:

**Today's Focus:**
- You have %d tasks due today
- %d high-priority tasks need attention

**Recommendations:**
- Start with high-priority tasks during peak energy hours
- Break large tasks into smaller, manageable chunks
- Schedule regular breaks to maintain focus
- Review completed tasks to stay motivated`,
		countDueToday(tasks, now),
		countHighPriorityPending(tasks))
}

func countCompleted(tasks []model.Task) int {
	count := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			count++
		}
	}
	return count
}

func countHighPriorityPending(tasks []model.Task) int {
	count := 0
	for _, t := range tasks {
		if t.Priority.IsHigh() && t.Status != model.StatusCompleted {
			count++
		}
	}
	return count
}

func countDueToday(tasks []model.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.DueOn(now) && t.Status != model.StatusCompleted {
			count++
		}
	}
	return count
}
