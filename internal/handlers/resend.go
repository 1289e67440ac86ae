package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/services"
)

// VerificationResender defines the interface for resending verification emails.
type VerificationResender interface {
	ResendVerificationEmail(ctx context.Context, email string) error
}

// ResendVerificationRequest represents the JSON body for a resend
// swagger:model ResendVerificationRequest
type ResendVerificationRequest struct {
	// Email
	// required: true
	// default: somchai@example.com
	Email string `json:"email"`
}

// ResendVerificationResponse represents a successful resend response
// swagger:model ResendVerificationResponse
type ResendVerificationResponse struct {
	// Success message
	// default: Verification email sent
	Message string `json:"message"`
}

// NewResendVerificationHandler returns an HTTP handler for resending
// the verification email.
// @Summary Resend verification email
// @Description Re-triggers the verification message, throttled per email. The response does not reveal whether the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param resendVerificationRequest body handlers.ResendVerificationRequest true "Resend request"
// @Success 200 {object} handlers.ResendVerificationResponse "Verification email sent"
// @Failure 429 {object} handlers.ErrorResponse "Sent too recently"
// @Router /resend-verification [post]
func NewResendVerificationHandler(svc VerificationResender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResendVerificationRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.ResendVerificationEmail(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrResendCooldown):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "A verification email was sent recently, try again in a minute"})
			case errors.Is(err, services.ErrProviderUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Could not send the email right now, try again later"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResendVerificationResponse{Message: "Verification email sent"})
	}
}
