package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulsecheck/pulsecheck/internal/auth"
	"github.com/pulsecheck/pulsecheck/internal/testutil"
)

func newAuthMiddleware(t *testing.T) (*auth.Tokens, func(http.Handler) http.Handler) {
	t.Helper()

	tokens := auth.NewTokens("test-secret", 0)
	mw := Auth(AuthConfig{
		Logger: testutil.DiscardLogger(),
		Tokens: tokens,
	})
	return tokens, mw
}

func TestAuth_MissingToken(t *testing.T) {
	_, mw := newAuthMiddleware(t)

	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called {
		t.Error("handler must not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["code"] != "UNAUTHORIZED" {
		t.Errorf("expected code UNAUTHORIZED, got %s", response["code"])
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, mw := newAuthMiddleware(t)

	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("Authorization", "not-a-valid-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called {
		t.Error("handler must not run with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	_, mw := newAuthMiddleware(t)

	other := auth.NewTokens("other-secret", 0)
	token, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a token signed by another key")
	}))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, mw := newAuthMiddleware(t)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "raw token", header: token},
		{name: "bearer prefix", header: "Bearer " + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = auth.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/report", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			if gotUserID != "user-42" {
				t.Errorf("expected user ID user-42 in context, got %q", gotUserID)
			}
		})
	}
}
