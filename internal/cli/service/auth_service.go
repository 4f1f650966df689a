package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"HabitAuth/internal/cli/api"
	"HabitAuth/internal/cli/session"
)

var (
	// ErrInvalidCredentials — сервер отверг логин/пароль либо недоступен.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrLoginTaken — логин уже зарегистрирован.
	ErrLoginTaken = errors.New("login already in use")
	// ErrNotLoggedIn — в текущей сессии нет пользователя.
	ErrNotLoggedIn = errors.New("not logged in")
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register создаёт учётную запись на сервере. Состояние сессии не меняется.
	Register(ctx context.Context, login, password string) error

	// Login аутентифицирует пользователя в текущей сессии.
	Login(ctx context.Context, login, password string) error

	// Logout очищает состояние аутентификации.
	Logout()

	// CurrentUser возвращает состояние текущего пользователя, если он вошёл.
	CurrentUser() (session.AuthState, error)
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionAuthService реализует AuthService поверх in-memory сессии.
type SessionAuthService struct {
	sess        *session.Session
	registerURL string
}

// NewAuthService creates the service. registerURL is the full URL of POST /api/auth/register.
func NewAuthService(sess *session.Session, registerURL string) *SessionAuthService {
	return &SessionAuthService{sess: sess, registerURL: registerURL}
}

var _ AuthService = (*SessionAuthService)(nil)

func (s *SessionAuthService) Register(ctx context.Context, login, password string) error {
	resp, body, err := api.PostJSON(ctx, s.registerURL, registerRequest{Username: login, Password: password})
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return ErrLoginTaken
	default:
		return fmt.Errorf("server error: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func (s *SessionAuthService) Login(ctx context.Context, login, password string) error {
	if !s.sess.Login(ctx, login, password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *SessionAuthService) Logout() {
	s.sess.Logout()
}

func (s *SessionAuthService) CurrentUser() (session.AuthState, error) {
	st := s.sess.State()
	if !st.IsLoggedIn {
		return st, ErrNotLoggedIn
	}
	return st, nil
}
