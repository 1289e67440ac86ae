package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// PasswordResetRequester defines the interface for starting a password reset.
type PasswordResetRequester interface {
	ResetPasswordRequest(ctx context.Context, email string)
}

// ForgotPasswordRequest represents the JSON body for a reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: somchai@example.com
	Email string `json:"email"`
}

// ForgotPasswordResponse represents the uniform reset-request response
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// Success message, identical whether or not the email exists
	// default: If that email is registered, a reset link has been sent
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler for reset requests.
// @Summary Request a password reset
// @Description Always responds with success so the endpoint cannot be used to enumerate accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Uniform success"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /forgot-password [post]
func NewForgotPasswordHandler(svc PasswordResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		svc.ResetPasswordRequest(r.Context(), req.Email)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ForgotPasswordResponse{
			Message: "If that email is registered, a reset link has been sent",
		})
	}
}
