package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
	"github.com/sornchai2025/buildmate-auth/internal/models"
)

// Redirect targets for the verification exchange.
const (
	verificationSuccessPath = "/auth/verification-success"
	authErrorPath           = "/auth/auth-error"
	defaultNextPath         = "/dashboard"
)

// TokenExchanger defines the verification/callback operations behind
// the /auth/token endpoint.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code string, ipAddress, userAgent *string) (*models.SessionDB, error)
	VerifyEmailToken(ctx context.Context, tokenHash, email string) error
}

// NewVerifyTokenHandler returns the HTTP handler for the emailed
// verification/callback link. It accepts either a one-time code or a
// token_hash+email pair with type=email, and always answers with a
// redirect: next (default /dashboard) on a code exchange,
// /auth/verification-success on a token verification, /auth/auth-error
// otherwise.
// @Summary Verification token exchange
// @Description Target of emailed verification and recovery links. Redirects on both success and failure; never renders an error body.
// @Tags auth
// @Param code query string false "One-time exchange code"
// @Param token_hash query string false "Verification token hash"
// @Param email query string false "Account email, required with token_hash"
// @Param type query string false "Token type, must be email with token_hash"
// @Param next query string false "Path to continue to after a code exchange"
// @Success 303 "Redirect to next, verification-success, or auth-error"
// @Router /auth/token [get]
func NewVerifyTokenHandler(svc TokenExchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		code := q.Get("code")
		tokenHash := q.Get("token_hash")
		email := q.Get("email")
		typ := q.Get("type")

		next := q.Get("next")
		if next == "" || !strings.HasPrefix(next, "/") {
			next = defaultNextPath
		}

		switch {
		case code != "":
			ip, ua := clientMeta(r)
			session, err := svc.ExchangeCode(r.Context(), code, ip, ua)
			if err != nil {
				http.Redirect(w, r, authErrorPath, http.StatusSeeOther)
				return
			}
			if session != nil {
				http.SetCookie(w, middlewares.SessionCookie(session.Token, session.ExpiresAt))
			}
			http.Redirect(w, r, next, http.StatusSeeOther)

		case tokenHash != "" && email != "" && typ == "email":
			if err := svc.VerifyEmailToken(r.Context(), tokenHash, email); err != nil {
				http.Redirect(w, r, authErrorPath, http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, verificationSuccessPath, http.StatusSeeOther)

		default:
			http.Redirect(w, r, authErrorPath, http.StatusSeeOther)
		}
	}
}
