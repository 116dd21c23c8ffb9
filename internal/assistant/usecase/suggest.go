package usecase

import (
	"context"
	"strings"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/model"
)

// Suggest sends the mode's prompt to the model and returns its text
// verbatim. A failed model call degrades to the mode's fixed apology
// line; it is never surfaced as an error.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input assistant.SuggestInput) (assistant.SuggestOutput, error) {
	if sc.IsZero() {
		return assistant.SuggestOutput{}, assistant.ErrNoUser
	}
	if !input.Mode.IsValid() {
		return assistant.SuggestOutput{}, assistant.ErrUnknownMode
	}

	raw := strings.TrimSpace(input.Input)
	if raw == "" {
		return assistant.SuggestOutput{}, assistant.ErrEmptyInput
	}

	output := assistant.SuggestOutput{Mode: input.Mode}

	text, err := uc.gen.Generate(ctx, assistant.BuildPrompt(input.Mode, raw))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggest Generate %s: %v", input.Mode, err)
		output.Response = assistant.Apology(input.Mode)
		output.Degraded = true
		return output, nil
	}

	output.Response = text
	if input.Mode == assistant.ModeEnhance || input.Mode == assistant.ModeSubtasks {
		output.Subtasks = assistant.ExtractSubtasks(text)
	}
	return output, nil
}
