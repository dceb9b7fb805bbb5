package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

func TestRequireRole(t *testing.T) {
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	ja := jwtauth.New("HS256", []byte("secret"), nil)

	testCases := []struct {
		Name           string
		Claims         map[string]interface{}
		ExpectedStatus int
	}{
		{
			Name:           "Success #1",
			Claims:         map[string]interface{}{"user_id": "1", "role": "admin"},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Error. Wrong role #2",
			Claims:         map[string]interface{}{"user_id": "1", "role": "requester"},
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:           "Error. No token #3",
			ExpectedStatus: http.StatusUnauthorized,
		},
	}

	handler := LogHandle(RequireRole("admin", "provider")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})))

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
			if tc.Claims != nil {
				token, _, err := ja.Encode(tc.Claims)
				if err != nil {
					t.Fatalf("failed to encode token: %v", err)
				}
				req = req.WithContext(jwtauth.NewContext(context.Background(), token, nil))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rec.Code)
			}
		})
	}
}
