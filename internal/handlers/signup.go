package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/models"
	"github.com/sornchai2025/buildmate-auth/internal/services"
)

// SignUpper defines the interface that the sign-up service must implement.
type SignUpper interface {
	SignUp(ctx context.Context, email, username, password, confirmPassword string) (*models.UserDB, error)
}

// SignUpRequest represents the JSON body for registration
// swagger:model SignUpRequest
type SignUpRequest struct {
	// Email
	// required: true
	// default: somchai@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// default: somchai
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password confirmation, must match Password
	// required: true
	// default: secret123
	ConfirmPassword string `json:"confirm_password"`
}

// SignUpResponse represents a successful registration response
// swagger:model SignUpResponse
type SignUpResponse struct {
	// Success message
	// default: Account created, check your email to verify it
	Message string `json:"message"`
}

// NewSignUpHandler returns an HTTP handler for registration.
// @Summary Register a new account
// @Description Creates an unverified account and dispatches a verification email. Email existence is deliberately revealed here to prevent duplicate accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param signUpRequest body handlers.SignUpRequest true "Registration request"
// @Success 201 {object} handlers.SignUpResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Passwords do not match / invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email or username already taken"
// @Router /signup [post]
func NewSignUpHandler(svc SignUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		_, err := svc.SignUp(r.Context(), req.Email, req.Username, req.Password, req.ConfirmPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Passwords do not match"})
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email already registered"})
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username already taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignUpResponse{Message: "Account created, check your email to verify it"})
	}
}
