package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"saccoflow/internal/auth"
	"saccoflow/internal/repository/rest"
	"saccoflow/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// writeError maps service errors onto HTTP statuses. Unrecognized errors
// are data-service failures and surface as a bad gateway with the
// collaborator's message intact.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	var invalid validator.ValidationErrors
	switch {
	case errors.As(err, &invalid), errors.Is(err, service.ErrMissingFields):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotConfirmed):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotPending):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNoSession):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrAdminUnavailable):
		status = http.StatusServiceUnavailable
	case rest.IsNotFound(err):
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Message: err.Error()})
}

func decodeBody(r *http.Request, into any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(into)
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
