package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"meowscope/internal/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// APIError is the error body of every endpoint: {"error": "..."}.
type APIError struct {
	Status  int      `json:"-"`
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (e *APIError) Error() string  { return e.Message }
func (e *APIError) GetStatus() int { return e.Status }

// NewAPIError replaces huma.NewError so huma failures share the APIError shape.
// Causes are only surfaced for client errors.
func NewAPIError(status int, msg string, errs ...error) huma.StatusError {
	e := &APIError{Status: status, Message: msg}
	if status < http.StatusInternalServerError {
		for _, err := range errs {
			if err != nil {
				e.Details = append(e.Details, err.Error())
			}
		}
	}
	return e
}

// writeError writes an APIError from a plain net/http handler.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &APIError{Status: status, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper to extract user ID from context (injected by auth middleware)
func getUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return "", huma.Error401Unauthorized("Unauthorized")
	}
	return userID, nil
}
