package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/models"
	"github.com/sornchai2025/buildmate-auth/internal/services"
)

// SessionCookieName is the cookie carrying the session bearer token.
const SessionCookieName = "bm_session"

// Redirect targets used by the gate.
const (
	SignInPath               = "/signin"
	DashboardPath            = "/dashboard"
	VerificationRequiredPath = "/auth/verification-required"
)

// Route sets. Protected and verification routes match by prefix,
// auth-only routes by exact path.
var (
	protectedPrefixes = []string{"/dashboard", "/profile", "/settings"}
	authOnlyPaths     = []string{"/signin", "/signup", "/forgot-password"}
	verificationPrefixes = []string{
		"/auth/token",
		"/auth/verification-success",
		"/auth/auth-error",
		"/auth/callback",
	}
)

// RouteClass categorizes a request path for the gate's decision.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteProtected
	RouteAuthOnly
	RouteVerification
)

// ClassifyPath maps a request path onto its route class.
func ClassifyPath(path string) RouteClass {
	for _, p := range verificationPrefixes {
		if strings.HasPrefix(path, p) {
			return RouteVerification
		}
	}
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return RouteProtected
		}
	}
	for _, p := range authOnlyPaths {
		if path == p {
			return RouteAuthOnly
		}
	}
	return RoutePublic
}

// Decision is the gate's verdict for a single request.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide applies the gate's decision table. It is a pure function of the
// route class and session state; first matching rule wins.
func Decide(class RouteClass, hasSession, verified bool) Decision {
	switch {
	case class == RouteVerification:
		// Verification flows must work with no session at all.
		return Decision{Allow: true}
	case class == RouteProtected && !hasSession:
		return Decision{RedirectTo: SignInPath}
	case class == RouteProtected && !verified:
		return Decision{RedirectTo: VerificationRequiredPath}
	case class == RouteAuthOnly && hasSession && !verified:
		// Blocks re-registration loops from half-verified accounts.
		return Decision{RedirectTo: VerificationRequiredPath}
	case class == RouteAuthOnly && hasSession:
		return Decision{RedirectTo: DashboardPath}
	default:
		return Decision{Allow: true}
	}
}

// SessionStater resolves a session token into its per-request state.
type SessionStater interface {
	GetState(ctx context.Context, token string) (*models.SessionState, error)
}

// Gate returns the request-gating middleware. It resolves the session
// cookie, applies the decision table, and redirects or passes through.
//
// Cookie refreshes happen before the decision is applied, so a
// soon-to-expire session is renewed even on redirect branches. Lookup
// failures never surface to the client: the request proceeds as
// unauthenticated, which fails closed for protected routes and open for
// public ones.
func Gate(svc SessionStater) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := resolveSession(r, svc)

			if state != nil && state.Refreshed {
				http.SetCookie(w, SessionCookie(state.Token, state.ExpiresAt))
			}

			decision := Decide(
				ClassifyPath(r.URL.Path),
				state != nil,
				state != nil && state.Verified,
			)
			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveSession reads the session cookie and looks up its state.
// Returns nil for missing, expired, and unresolvable sessions.
func resolveSession(r *http.Request, svc SessionStater) *models.SessionState {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	state, err := svc.GetState(r.Context(), cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound),
			errors.Is(err, services.ErrSessionExpired):
			// Normal unauthenticated outcomes.
		default:
			logger.Log.Errorw("session lookup failed, treating request as unauthenticated",
				"path", r.URL.Path, "error", err)
		}
		return nil
	}
	return state
}

// SessionCookie builds the session cookie for the given token and expiry.
func SessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds an expired cookie that removes the session
// from the browser.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
