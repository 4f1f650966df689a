// Package session holds the client-side authentication state of one application session.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DefaultRole назначается при любом успешном входе: сервер пока не сообщает роль пользователя.
const DefaultRole = "USER"

// AuthState is a snapshot of the current authentication state.
type AuthState struct {
	Username   string
	Role       string
	IsLoggedIn bool
}

// Authenticator проверяет учётные данные на сервере.
// ok=false без ошибки означает отказ сервера, ошибка означает сбой транспорта.
type Authenticator interface {
	Check(ctx context.Context, username, password string) (ok bool, err error)
}

// Session is the authentication state provider. It is created once per
// application session and passed by reference to whatever needs it.
type Session struct {
	auth   Authenticator
	logger *zap.SugaredLogger

	mu    sync.RWMutex
	state AuthState
}

// New creates a logged-out session. A nil logger disables diagnostics.
func New(auth Authenticator, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{auth: auth, logger: logger}
}

// Login checks the credentials with one request to the server. On success the
// state becomes {username, "USER", true}; on rejection or transport failure the
// state is left unchanged and false is returned. Login never returns an error.
//
// Overlapping calls are not serialized: the last one to finish wins.
func (s *Session) Login(ctx context.Context, username, password string) bool {
	ok, err := s.auth.Check(ctx, username, password)
	if err != nil {
		s.logger.Errorw("login request failed", "username", username, "error", err)
		return false
	}
	if !ok {
		s.logger.Debugw("login rejected", "username", username)
		return false
	}

	s.mu.Lock()
	s.state = AuthState{Username: username, Role: DefaultRole, IsLoggedIn: true}
	s.mu.Unlock()

	s.logger.Debugw("logged in", "username", username)
	return true
}

// Logout resets the state. It is safe to call repeatedly.
func (s *Session) Logout() {
	s.mu.Lock()
	s.state = AuthState{}
	s.mu.Unlock()
}

// State returns a consistent snapshot of the state.
func (s *Session) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Username returns the login of the current user, empty when logged out.
func (s *Session) Username() string { return s.State().Username }

// Role returns the current role: DefaultRole after login, empty otherwise.
func (s *Session) Role() string { return s.State().Role }

// IsLoggedIn reports whether the last completed Login succeeded and no Logout followed.
func (s *Session) IsLoggedIn() bool { return s.State().IsLoggedIn }
