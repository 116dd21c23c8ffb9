package analytics

import "errors"

var (
	ErrNoUser = errors.New("no authenticated user")
)
