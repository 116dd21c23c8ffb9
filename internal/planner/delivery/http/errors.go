package http

import (
	"net/http"

	"smarttaskai/internal/planner"
	pkgErrors "smarttaskai/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case planner.ErrNoUser:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "sign in to plan your day")
	case planner.ErrInvalidDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	case planner.ErrSyncDisabled:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar sync is not configured")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
