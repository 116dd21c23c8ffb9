package http

import (
	"net/http"

	"smarttaskai/internal/analytics"
	pkgErrors "smarttaskai/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case analytics.ErrNoUser:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "sign in to view analytics")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
