package http

import (
	"smarttaskai/internal/planner"
	"smarttaskai/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Plan(c interface{})
	Sync(c interface{})
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
