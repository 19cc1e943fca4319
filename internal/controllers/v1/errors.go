package v1

import (
	"errors"
	"net/http"

	"github.com/moneyflow-app/backend/internal/auth"
	"github.com/moneyflow-app/backend/internal/models"
)

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if models.IsConflict(err) {
		return http.StatusConflict
	}

	if errors.Is(err, auth.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}
