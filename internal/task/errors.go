package task

import "errors"

var (
	ErrNoUser          = errors.New("no authenticated user")
	ErrTitleRequired   = errors.New("title is required")
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrInvalidDueDate  = errors.New("invalid due date")
)
