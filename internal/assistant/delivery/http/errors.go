package http

import (
	"net/http"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/task"
	pkgErrors "smarttaskai/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case assistant.ErrNoUser, task.ErrNoUser:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "sign in to use the assistant")
	case assistant.ErrEmptyInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "input must not be empty")
	case assistant.ErrUnknownMode:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "mode must be one of enhance, analyze, subtasks, help")
	case assistant.ErrEmptyCreate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "input is required")
	case task.ErrTitleRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "task title is required")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
