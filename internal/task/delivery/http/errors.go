package http

import (
	"net/http"

	"smarttaskai/internal/task"
	pkgErrors "smarttaskai/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrNoUser:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "sign in to manage tasks")
	case task.ErrTitleRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "task title is required")
	case task.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task payload")
	case task.ErrInvalidDueDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "due date must be YYYY-MM-DD")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case task.ErrSubtaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "subtask not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
