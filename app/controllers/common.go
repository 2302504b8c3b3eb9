package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sahayog/app/repositories"
	"sahayog/app/services"
)

// Helper methods shared by the controllers for consistent response
// handling.

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// sendServiceError maps a service or repository error onto the right
// status code. Validation and not-found failures are expected and carry
// their specific message; anything else is a 500.
func sendServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, notFoundMessage, http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidCredentials):
		sendError(w, "Invalid credentials", http.StatusUnauthorized)
	default:
		sendError(w, "An unexpected error occurred", http.StatusInternalServerError)
	}
}
