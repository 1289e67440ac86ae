package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFacade(t *testing.T, handler http.HandlerFunc) *IdentityHTTPFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewIdentityHTTPFacade(srv.URL, "anon-key", "service-key", srv.Client())
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestIdentityHTTPFacade_SignInWithPassword(t *testing.T) {
	confirmedAt := time.Now().UTC().Truncate(time.Second)

	t.Run("success with user object", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "somchai@example.com", body["email"])
			assert.Equal(t, "secret123", body["password"])

			json.NewEncoder(w).Encode(tokenResponse{
				AccessToken: "ignored",
				User: &Principal{
					ID:               "provider-uuid",
					Email:            "somchai@example.com",
					EmailConfirmedAt: &confirmedAt,
				},
			})
		})

		p, err := f.SignInWithPassword(context.Background(), "somchai@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "provider-uuid", p.ID)
		require.NotNil(t, p.EmailConfirmedAt)
		assert.True(t, p.EmailConfirmedAt.Equal(confirmedAt))
	})

	t.Run("falls back to token claims", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{
			"sub":   "provider-uuid",
			"email": "somchai@example.com",
		})
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(tokenResponse{AccessToken: token})
		})

		p, err := f.SignInWithPassword(context.Background(), "somchai@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "provider-uuid", p.ID)
		assert.Equal(t, "somchai@example.com", p.Email)
		assert.Nil(t, p.EmailConfirmedAt)
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		})

		_, err := f.SignInWithPassword(context.Background(), "somchai@example.com", "wrong")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("server error", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := f.SignInWithPassword(context.Background(), "somchai@example.com", "secret123")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("no principal in response", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(tokenResponse{})
		})

		_, err := f.SignInWithPassword(context.Background(), "somchai@example.com", "secret123")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("unreachable provider", func(t *testing.T) {
		f := NewIdentityHTTPFacade("http://127.0.0.1:1", "anon-key", "service-key", &http.Client{Timeout: time.Second})

		_, err := f.SignInWithPassword(context.Background(), "somchai@example.com", "secret123")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestIdentityHTTPFacade_SignUp(t *testing.T) {
	f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		assert.Equal(t, "https://example.com/auth/token", r.URL.Query().Get("redirect_to"))

		json.NewEncoder(w).Encode(tokenResponse{
			User: &Principal{ID: "provider-uuid", Email: "somchai@example.com"},
		})
	})

	p, err := f.SignUp(context.Background(), "somchai@example.com", "secret123", "https://example.com/auth/token")
	require.NoError(t, err)
	assert.Equal(t, "provider-uuid", p.ID)
	assert.Nil(t, p.EmailConfirmedAt)
}

func TestIdentityHTTPFacade_SignOut(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"no content", http.StatusNoContent, false},
		{"already signed out", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/logout", r.URL.Path)
				w.WriteHeader(tt.status)
			})

			err := f.SignOut(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrProviderUnavailable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIdentityHTTPFacade_ResetPasswordForEmail(t *testing.T) {
	f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recover", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("redirect_to"))
		w.WriteHeader(http.StatusOK)
	})

	err := f.ResetPasswordForEmail(context.Background(), "somchai@example.com", "https://example.com/auth/token?next=/reset-password")
	assert.NoError(t, err)
}

func TestIdentityHTTPFacade_Resend(t *testing.T) {
	f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resend", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "signup", body["type"])
		assert.Equal(t, "somchai@example.com", body["email"])

		w.WriteHeader(http.StatusOK)
	})

	err := f.Resend(context.Background(), "signup", "somchai@example.com", "https://example.com/auth/token")
	assert.NoError(t, err)
}

func TestIdentityHTTPFacade_VerifyOTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/verify", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "email", body["type"])
			assert.Equal(t, "hash123", body["token"])

			json.NewEncoder(w).Encode(tokenResponse{AccessToken: "whatever"})
		})

		assert.NoError(t, f.VerifyOTP(context.Background(), "somchai@example.com", "hash123", "email"))
	})

	t.Run("used token", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		err := f.VerifyOTP(context.Background(), "somchai@example.com", "used", "email")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestIdentityHTTPFacade_ExchangeCodeForSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "pkce", r.URL.Query().Get("grant_type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "code123", body["auth_code"])

			json.NewEncoder(w).Encode(tokenResponse{
				User: &Principal{ID: "provider-uuid", Email: "somchai@example.com"},
			})
		})

		p, err := f.ExchangeCodeForSession(context.Background(), "code123")
		require.NoError(t, err)
		assert.Equal(t, "somchai@example.com", p.Email)
	})

	t.Run("bad code", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := f.ExchangeCodeForSession(context.Background(), "badcode")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestIdentityHTTPFacade_CheckEmailExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/users", r.URL.Path)
			assert.Equal(t, "somchai@example.com", r.URL.Query().Get("email"))
			assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]any{
				"users": []Principal{{ID: "provider-uuid", Email: "somchai@example.com"}},
			})
		})

		exists, err := f.CheckEmailExists(context.Background(), "somchai@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"users": []Principal{}})
		})

		exists, err := f.CheckEmailExists(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("privileged endpoint failure", func(t *testing.T) {
		f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := f.CheckEmailExists(context.Background(), "somchai@example.com")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}
