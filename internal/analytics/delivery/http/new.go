package http

import (
	"smarttaskai/internal/analytics"
	"smarttaskai/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	Summary(c interface{})
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
