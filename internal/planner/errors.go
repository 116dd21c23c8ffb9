package planner

import "errors"

var (
	ErrNoUser       = errors.New("no authenticated user")
	ErrInvalidDate  = errors.New("invalid plan date")
	ErrSyncDisabled = errors.New("calendar sync is not configured")
)
