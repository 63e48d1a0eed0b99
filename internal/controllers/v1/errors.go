package v1

import (
	"errors"
	"net/http"

	"github.com/lmnpbooks/backend/internal/depreciation"
	"github.com/lmnpbooks/backend/internal/httputil"
	"github.com/lmnpbooks/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no depreciation asset matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	// Broken invariants are defects, not user errors
	case errors.Is(err, models.ErrGeneral),
		errors.Is(err, depreciation.ErrInvalidScheduleParameters):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, depreciation.ErrAssetNotFound):
		return http.StatusNotFound

	case errors.Is(err, httputil.ErrUserIDMissing):
		return http.StatusUnauthorized

	default:
		return http.StatusBadRequest
	}
}
