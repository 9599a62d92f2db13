package handler

import (
	"errors"
	"net/http"

	"github.com/mpetrov/storefront-server/internal/model"
)

// handleError translates domain errors into HTTP responses. Store and
// other unexpected failures are reported as a generic 500 without
// leaking details.
func handleError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": validationErr.Reason})
		return
	}

	switch {
	case errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "email already exists, please login"})
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid credentials"})
	case errors.Is(err, model.ErrNoActiveSession):
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "no refresh token found, user already logged out"})
	case errors.Is(err, model.ErrMissingToken):
		writeJSON(w, http.StatusUnauthorized, response{"success": false, "message": "refresh token is missing"})
	case errors.Is(err, model.ErrInvalidToken):
		writeJSON(w, http.StatusForbidden, response{"success": false, "message": "invalid or expired token"})
	case errors.Is(err, model.ErrTokenRevoked):
		writeJSON(w, http.StatusForbidden, response{"success": false, "message": "refresh token not recognized"})
	case errors.Is(err, model.ErrCartNotFound):
		writeJSON(w, http.StatusNotFound, response{"success": false, "message": "cart not found"})
	case errors.Is(err, model.ErrLineNotFound):
		writeJSON(w, http.StatusNotFound, response{"success": false, "message": "item not found in cart"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, response{"success": false, "message": "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, response{"success": false, "message": "internal server error"})
	}
}
