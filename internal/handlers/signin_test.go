package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
	"github.com/sornchai2025/buildmate-auth/internal/models"
	"github.com/sornchai2025/buildmate-auth/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignInHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &models.SessionDB{
		ID:        1,
		UserID:    42,
		Token:     "abcdef0123456789",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockSignIner)
		expectedCode  int
		expectedBody  map[string]string
		expectsCookie bool
	}{
		{
			name: "success sets session cookie",
			body: `{"email":"somchai@example.com","password":"secret123"}`,
			mockSetup: func(m *MockSignIner) {
				m.EXPECT().
					SignIn(gomock.Any(), "somchai@example.com", "secret123", gomock.Any(), gomock.Any()).
					Return(session, nil)
			},
			expectedCode:  200,
			expectedBody:  map[string]string{"message": "Signed in successfully"},
			expectsCookie: true,
		},
		{
			name: "invalid credentials",
			body: `{"email":"somchai@example.com","password":"wrong"}`,
			mockSetup: func(m *MockSignIner) {
				m.EXPECT().
					SignIn(gomock.Any(), "somchai@example.com", "wrong", gomock.Any(), gomock.Any()).
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid email or password"},
		},
		{
			name: "email not verified",
			body: `{"email":"somchai@example.com","password":"secret123"}`,
			mockSetup: func(m *MockSignIner) {
				m.EXPECT().
					SignIn(gomock.Any(), "somchai@example.com", "secret123", gomock.Any(), gomock.Any()).
					Return(nil, services.ErrEmailNotVerified)
			},
			expectedCode: 403,
			expectedBody: map[string]string{"error": "Please verify your email before signing in"},
		},
		{
			name: "internal server error",
			body: `{"email":"somchai@example.com","password":"secret123"}`,
			mockSetup: func(m *MockSignIner) {
				m.EXPECT().
					SignIn(gomock.Any(), "somchai@example.com", "secret123", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignIner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSignInHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)

			var sessionCookie *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == middlewares.SessionCookieName {
					sessionCookie = c
				}
			}
			if tt.expectsCookie {
				assert.NotNil(t, sessionCookie)
				assert.Equal(t, session.Token, sessionCookie.Value)
				assert.True(t, sessionCookie.HttpOnly)
			} else {
				assert.Nil(t, sessionCookie)
			}
		})
	}
}

func TestClientMeta(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	req.Header.Set("User-Agent", "buildmate-test")

	ip, ua := clientMeta(req)
	assert.NotNil(t, ip)
	assert.Equal(t, "10.0.0.7", *ip)
	assert.NotNil(t, ua)
	assert.Equal(t, "buildmate-test", *ua)

	bare := httptest.NewRequest(http.MethodPost, "/signin", nil)
	bare.RemoteAddr = "10.0.0.8"
	ip, ua = clientMeta(bare)
	assert.NotNil(t, ip)
	assert.Equal(t, "10.0.0.8", *ip)
	assert.Nil(t, ua)
}
