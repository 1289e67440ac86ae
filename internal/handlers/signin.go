package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
	"github.com/sornchai2025/buildmate-auth/internal/models"
	"github.com/sornchai2025/buildmate-auth/internal/services"
)

// SignIner defines the interface that the sign-in service must implement.
type SignIner interface {
	SignIn(ctx context.Context, email, password string, ipAddress, userAgent *string) (*models.SessionDB, error)
}

// SignInRequest represents the JSON body for sign-in
// swagger:model SignInRequest
type SignInRequest struct {
	// Email
	// required: true
	// default: somchai@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignInResponse represents a successful sign-in response
// swagger:model SignInResponse
type SignInResponse struct {
	// Success message
	// default: Signed in successfully
	Message string `json:"message"`
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSignInHandler returns an HTTP handler for sign-in.
// @Summary Sign in
// @Description Authenticates email/password and sets the session cookie. Unverified accounts are rejected even with correct credentials.
// @Tags auth
// @Accept json
// @Produce json
// @Param signInRequest body handlers.SignInRequest true "Sign-in request"
// @Success 200 {object} handlers.SignInResponse "Session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 403 {object} handlers.ErrorResponse "Email not verified"
// @Router /signin [post]
func NewSignInHandler(svc SignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ip, ua := clientMeta(r)
		session, err := svc.SignIn(r.Context(), req.Email, req.Password, ip, ua)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid email or password"})
			case errors.Is(err, services.ErrEmailNotVerified):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Please verify your email before signing in"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		http.SetCookie(w, middlewares.SessionCookie(session.Token, session.ExpiresAt))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SignInResponse{Message: "Signed in successfully"})
	}
}

// clientMeta extracts the caller's IP and user agent for session records.
func clientMeta(r *http.Request) (ip, ua *string) {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		ip = &host
	} else if r.RemoteAddr != "" {
		addr := r.RemoteAddr
		ip = &addr
	}
	if agent := r.UserAgent(); agent != "" {
		ua = &agent
	}
	return ip, ua
}
