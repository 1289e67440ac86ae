package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// EmailChecker defines the interface for the duplicate-email lookup.
type EmailChecker interface {
	CheckEmailExists(ctx context.Context, email string) bool
}

// CheckEmailResponse reports whether an email is already registered
// swagger:model CheckEmailResponse
type CheckEmailResponse struct {
	// Whether the email is taken
	Exists bool `json:"exists"`
}

// NewCheckEmailHandler returns an HTTP handler for the duplicate-email
// check used by the sign-up form.
// @Summary Check whether an email is registered
// @Description UX helper for sign-up forms. Fails open to false when the lookup is degraded; the store uniqueness constraint remains the real guard.
// @Tags auth
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} handlers.CheckEmailResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing email parameter"
// @Router /check-email [get]
func NewCheckEmailHandler(svc EmailChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "email parameter is required"})
			return
		}

		exists := svc.CheckEmailExists(r.Context(), email)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CheckEmailResponse{Exists: exists})
	}
}
