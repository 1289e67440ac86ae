package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sornchai2025/buildmate-auth/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockPasswordResetter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"token":"resettoken","password":"newsecret123"}`,
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					CompleteReset(gomock.Any(), "resettoken", "newsecret123").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Password updated, sign in again"},
		},
		{
			name: "malformed token",
			body: `{"token":"bogus","password":"newsecret123"}`,
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					CompleteReset(gomock.Any(), "bogus", "newsecret123").
					Return(services.ErrMalformedToken)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid reset link"},
		},
		{
			name: "expired token",
			body: `{"token":"stale","password":"newsecret123"}`,
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					CompleteReset(gomock.Any(), "stale", "newsecret123").
					Return(services.ErrResetTokenExpired)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Reset link has expired, request a new one"},
		},
		{
			name: "internal server error",
			body: `{"token":"resettoken","password":"newsecret123"}`,
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					CompleteReset(gomock.Any(), "resettoken", "newsecret123").
					Return(errors.New("database failure"))
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
			mockSvc := NewMockPasswordResetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetPasswordHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/reset-password", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
