package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HabitAuth/internal/token"
)

// next-хендлер отвечает 200 с логином из claims либо 401
func claimsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := GetClaimsFromContext(r.Context()); ok {
			_, _ = w.Write([]byte(c.Username))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
}

// Тест: валидный Bearer-токен — claims попадают в контекст
func TestWithBearerAuth_ValidTokenSetsClaims(t *testing.T) {
	m := token.NewManager("test-secret", time.Minute)
	tok, err := m.Generate("u1", "alice", "ROLE_USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h := WithBearerAuth(m)(claimsHandler())
	for _, scheme := range []string{"Bearer ", "bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", scheme+tok)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK || rr.Body.String() != "alice" {
			t.Fatalf("%q: expected 200 alice, got %d %q", scheme, rr.Code, rr.Body.String())
		}
	}
}

// Тест: отсутствие заголовка и Basic-схема — claims не устанавливаются
func TestWithBearerAuth_NoTokenLeavesAnonymous(t *testing.T) {
	h := WithBearerAuth(token.NewManager("s", time.Minute))(claimsHandler())

	for _, header := range []string{"", "Basic YWxpY2U6cHcx", "Bearer ", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rr.Code)
		}
	}
}

// Тест: токен с чужим секретом и просроченный токен — claims не устанавливаются
func TestWithBearerAuth_InvalidToken(t *testing.T) {
	foreign, err := token.NewManager("secret-A", time.Minute).Generate("u1", "alice", "ROLE_USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	expired, err := token.NewManager("secret-B", -time.Minute).Generate("u1", "alice", "ROLE_USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h := WithBearerAuth(token.NewManager("secret-B", time.Minute))(claimsHandler())
	for name, tok := range map[string]string{"foreign": foreign, "expired": expired, "garbage": "not.a.jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rr.Code)
		}
	}
}
