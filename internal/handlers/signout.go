package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
)

// SignOuter defines the interface that the sign-out service must implement.
type SignOuter interface {
	SignOut(ctx context.Context, token string)
}

// SignOutResponse represents a sign-out response
// swagger:model SignOutResponse
type SignOutResponse struct {
	// Success message
	// default: Signed out
	Message string `json:"message"`
}

// NewSignOutHandler returns an HTTP handler for sign-out.
// @Summary Sign out
// @Description Revokes the current session and clears the cookie. Idempotent: succeeds with no active session too.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SignOutResponse "Signed out"
// @Router /signout [post]
func NewSignOutHandler(svc SignOuter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(middlewares.SessionCookieName); err == nil {
			token = cookie.Value
		}

		svc.SignOut(r.Context(), token)

		http.SetCookie(w, middlewares.ClearSessionCookie())
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SignOutResponse{Message: "Signed out"})
	}
}
