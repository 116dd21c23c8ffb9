package assistant

import (
	"context"

	"smarttaskai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Suggest runs one of the enhance/analyze/subtasks/help features.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// Insights summarizes the user's tasks and asks the model for daily
	// planning advice, degrading to a local summary on failure.
	Insights(ctx context.Context, sc model.Scope) (InsightsOutput, error)

	// CreateTaskFromResponse persists a task built from a raw input and
	// a prior model response.
	CreateTaskFromResponse(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
}

// Generator is the single-prompt text generation surface the assistant
// needs from the model client.
//
//go:generate mockery --name Generator
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Classifier assigns a coarse category and priority to raw input when a
// task is created without the user filling a form.
type Classifier interface {
	Classify(input string) Classification
}
