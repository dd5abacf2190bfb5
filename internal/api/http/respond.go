package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafe-backend/internal/domain"
)

// Error payloads are always {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, errorResponse{Detail: detail})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Unclassified
// errors become an opaque 500 so database details never reach the client.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredential):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrMenuInUse), errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
