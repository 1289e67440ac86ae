package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestSignOutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		cookie    *http.Cookie
		wantToken string
	}{
		{
			name:      "with session cookie",
			cookie:    &http.Cookie{Name: middlewares.SessionCookieName, Value: "token123"},
			wantToken: "token123",
		},
		{
			name:      "without session cookie",
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignOuter(ctrl)
			mockSvc.EXPECT().SignOut(gomock.Any(), tt.wantToken)

			handler := NewSignOutHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/signout", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, 200, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, map[string]string{"message": "Signed out"}, resp)

			var cleared *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == middlewares.SessionCookieName {
					cleared = c
				}
			}
			assert.NotNil(t, cleared)
			assert.Empty(t, cleared.Value)
			assert.Negative(t, cleared.MaxAge)
		})
	}
}
