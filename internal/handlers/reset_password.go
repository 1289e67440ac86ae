package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/services"
)

// PasswordResetter defines the interface for completing a password reset.
type PasswordResetter interface {
	CompleteReset(ctx context.Context, token, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for completing a reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// One-time reset token from the emailed link
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	// default: newsecret123
	Password string `json:"password"`
}

// ResetPasswordResponse represents a successful reset response
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success message
	// default: Password updated, sign in again
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler for completing a reset.
// @Summary Complete a password reset
// @Description Consumes the one-time reset token, updates the password, and revokes every session the account holds.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset completion request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset link"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.CompleteReset(r.Context(), req.Token, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrMalformedToken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid reset link"})
			case errors.Is(err, services.ErrResetTokenExpired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Reset link has expired, request a new one"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Password updated, sign in again"})
	}
}
