package assistant

import "errors"

var (
	ErrNoUser      = errors.New("no authenticated user")
	ErrEmptyInput  = errors.New("input must not be empty")
	ErrUnknownMode = errors.New("unknown suggestion mode")
	ErrEmptyCreate = errors.New("input and response are required to create a task")
)
