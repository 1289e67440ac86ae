package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockPasswordResetRequester)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "known email",
			body: `{"email":"somchai@example.com"}`,
			mockSetup: func(m *MockPasswordResetRequester) {
				m.EXPECT().ResetPasswordRequest(gomock.Any(), "somchai@example.com")
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "If that email is registered, a reset link has been sent"},
		},
		{
			name: "unknown email gets the same response",
			body: `{"email":"nobody@example.com"}`,
			mockSetup: func(m *MockPasswordResetRequester) {
				m.EXPECT().ResetPasswordRequest(gomock.Any(), "nobody@example.com")
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "If that email is registered, a reset link has been sent"},
		},
		{
			name:         "empty email",
			body:         `{"email":""}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
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
			mockSvc := NewMockPasswordResetRequester(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewForgotPasswordHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/forgot-password", bytes.NewBufferString(tt.body))
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
