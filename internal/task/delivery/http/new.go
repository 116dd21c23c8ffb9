package http

import (
	"smarttaskai/internal/task"
	"smarttaskai/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c interface{})
	Create(c interface{})
	Update(c interface{})
	Delete(c interface{})
	Toggle(c interface{})
	ToggleSubtask(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
