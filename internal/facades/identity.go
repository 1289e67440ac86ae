package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sornchai2025/buildmate-auth/internal/logger"
)

// Facade-level errors. The auth service re-tags these into its own taxonomy.
var (
	// ErrBadCredentials is returned when the provider rejects an
	// email/password pair or a one-time token.
	ErrBadCredentials = errors.New("identity provider rejected credentials")
	// ErrProviderUnavailable is returned for transport failures and
	// unexpected provider responses.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Principal is the provider's view of an authenticated account.
type Principal struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
}

// IdentityHTTPFacade implements identity-provider operations over its
// HTTP/JSON API. All calls are fallible remote calls and carry ctx.
type IdentityHTTPFacade struct {
	baseURL    string
	apiKey     string
	serviceKey string // privileged key, used only for the email existence lookup
	client     *http.Client
}

// NewIdentityHTTPFacade creates a new facade for the provider at baseURL.
func NewIdentityHTTPFacade(baseURL, apiKey, serviceKey string, client *http.Client) *IdentityHTTPFacade {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &IdentityHTTPFacade{
		baseURL:    baseURL,
		apiKey:     apiKey,
		serviceKey: serviceKey,
		client:     client,
	}
}

type tokenResponse struct {
	AccessToken string     `json:"access_token"`
	User        *Principal `json:"user"`
}

// SignInWithPassword exchanges an email/password pair for the provider's
// principal. A 400/401 from the password grant means bad credentials.
func (f *IdentityHTTPFacade) SignInWithPassword(ctx context.Context, email, password string) (*Principal, error) {
	body := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	status, err := f.post(ctx, "/token?grant_type=password", f.apiKey, body, &resp)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusOK:
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		return nil, ErrBadCredentials
	default:
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}

	return f.principal(&resp)
}

// SignUp registers a new account with the provider. The provider
// dispatches the verification email pointing at redirectURL.
func (f *IdentityHTTPFacade) SignUp(ctx context.Context, email, password, redirectURL string) (*Principal, error) {
	body := map[string]string{"email": email, "password": password}
	path := "/signup?redirect_to=" + url.QueryEscape(redirectURL)

	var resp tokenResponse
	status, err := f.post(ctx, path, f.apiKey, body, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}

	return f.principal(&resp)
}

// SignOut invalidates the provider-side session. Idempotent; a 404 for an
// already-dead session is not an error.
func (f *IdentityHTTPFacade) SignOut(ctx context.Context) error {
	status, err := f.post(ctx, "/logout", f.apiKey, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent && status != http.StatusNotFound {
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}
	return nil
}

// ResetPasswordForEmail asks the provider to dispatch a recovery email.
func (f *IdentityHTTPFacade) ResetPasswordForEmail(ctx context.Context, email, redirectURL string) error {
	body := map[string]string{"email": email}
	path := "/recover?redirect_to=" + url.QueryEscape(redirectURL)

	status, err := f.post(ctx, path, f.apiKey, body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}
	return nil
}

// Resend re-triggers a transactional email of the given type ("signup",
// "recovery"). The provider does not rate-limit this; callers must.
func (f *IdentityHTTPFacade) Resend(ctx context.Context, typ, email, redirectURL string) error {
	body := map[string]string{"type": typ, "email": email}
	path := "/resend?redirect_to=" + url.QueryEscape(redirectURL)

	status, err := f.post(ctx, path, f.apiKey, body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}
	return nil
}

// VerifyOTP exchanges a one-time token for a confirmed state. Tokens are
// single use: a second exchange with the same token fails.
func (f *IdentityHTTPFacade) VerifyOTP(ctx context.Context, email, token, typ string) error {
	body := map[string]string{"type": typ, "email": email, "token": token}

	var resp tokenResponse
	status, err := f.post(ctx, "/verify", f.apiKey, body, &resp)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusOK:
		return nil
	case status >= 400 && status < 500:
		return ErrBadCredentials
	default:
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}
}

// ExchangeCodeForSession trades an emailed one-time code for a principal.
func (f *IdentityHTTPFacade) ExchangeCodeForSession(ctx context.Context, code string) (*Principal, error) {
	body := map[string]string{"auth_code": code}

	var resp tokenResponse
	status, err := f.post(ctx, "/token?grant_type=pkce", f.apiKey, body, &resp)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusOK:
	case status >= 400 && status < 500:
		return nil, ErrBadCredentials
	default:
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}

	return f.principal(&resp)
}

// CheckEmailExists performs a privileged lookup for an existing account.
// Callers treat an error as "unknown"; the store-level uniqueness
// constraint remains the source of truth.
func (f *IdentityHTTPFacade) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	path := "/admin/users?email=" + url.QueryEscape(email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+f.serviceKey)

	res, err := f.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: status %d", ErrProviderUnavailable, res.StatusCode)
	}

	var out struct {
		Users []Principal `json:"users"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return len(out.Users) > 0, nil
}

// principal extracts the account identity from a provider response,
// falling back to the access token claims when the user object is
// missing. The token signature was produced by the provider we just
// spoke to over TLS, so claims are read without re-verification.
func (f *IdentityHTTPFacade) principal(resp *tokenResponse) (*Principal, error) {
	if resp.User != nil && resp.User.ID != "" {
		return resp.User, nil
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: response carried no principal", ErrProviderUnavailable)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	p := &Principal{}
	if sub, err := claims.GetSubject(); err == nil {
		p.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%w: access token carried no subject", ErrProviderUnavailable)
	}
	return p, nil
}

// post sends a JSON request and decodes a JSON response when out is
// non-nil. Returns the HTTP status; transport errors wrap
// ErrProviderUnavailable.
func (f *IdentityHTTPFacade) post(ctx context.Context, path, key string, body any, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	res, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("identity provider request failed", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	if out != nil && res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return res.StatusCode, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
	}
	return res.StatusCode, nil
}
