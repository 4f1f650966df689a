package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"HabitAuth/internal/cli/api"
	"HabitAuth/internal/cli/session"
	"HabitAuth/internal/config"
)

// stubServer имитирует сервер аутентификации: alice:pw1 — валидная пара, alice уже занята.
type stubServer struct {
	*httptest.Server
	privateCalls int32
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()
	s := &stubServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/private", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.privateCalls, 1)
		if u, p, ok := r.BasicAuth(); ok && u == "alice" && p == "pw1" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username == "alice" {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) calls() int32 { return atomic.LoadInt32(&s.privateCalls) }

// withSession собирает конфиг и контекст с сессией, как это делает main.
func withSession(t *testing.T, serverURL string) (context.Context, *config.Config, *session.Session) {
	t.Helper()
	cfg := &config.Config{ServerURL: serverURL, AuthPath: "/api/auth/private"}
	sess := session.New(api.NewBasicAuthChecker(cfg.PrivateURL(), nil), nil)
	return session.WithSession(context.Background(), sess), cfg, sess
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
