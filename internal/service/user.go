package service

import (
	"context"
	"errors"

	"HabitAuth/internal/model"
	"HabitAuth/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrLoginTaken — логин уже занят.
	ErrLoginTaken = errors.New("login already taken")
	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyCredentials — пустой логин или пароль.
	ErrEmptyCredentials = errors.New("username and password are required")
)

// UserService — бизнес-логика учётных записей.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с ролью ROLE_USER и bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// между проверкой и вставкой логин может занять параллельный запрос
	u, err := s.repo.CreateUser(ctx, &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrLoginTaken
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate проверяет пару логин/пароль.
// Неизвестный логин и неверный пароль неразличимы для вызывающего.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureUser регистрирует пользователя, если его ещё нет. Используется для seed при старте.
func (s *UserService) EnsureUser(ctx context.Context, username, password string) (created bool, err error) {
	_, err = s.Register(ctx, username, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrLoginTaken):
		return false, nil
	default:
		return false, err
	}
}
