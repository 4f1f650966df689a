package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"HabitAuth/internal/model"
	"HabitAuth/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrRefreshTokenNotFound — токен неизвестен серверу.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired — срок действия токена истёк.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	// ErrRefreshTokenReused — предъявлен уже использованный токен; все токены пользователя отозваны.
	ErrRefreshTokenReused = errors.New("refresh token reuse detected")
)

// RefreshTokenService выдаёт, ротирует и отзывает refresh-токены.
type RefreshTokenService struct {
	tokens repo.RefreshTokenRepository
	users  repo.UserRepository
	ttl    time.Duration
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewRefreshTokenService(tokens repo.RefreshTokenRepository, users repo.UserRepository, ttl time.Duration, logger *zap.SugaredLogger) *RefreshTokenService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RefreshTokenService{tokens: tokens, users: users, ttl: ttl, logger: logger, now: time.Now}
}

// Create выдаёт новый токен пользователю и возвращает его в открытом виде.
func (s *RefreshTokenService) Create(ctx context.Context, userID string) (string, error) {
	raw := uuid.NewString()
	err := s.tokens.Create(ctx, &model.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: hashToken(raw),
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	})
	if err != nil {
		return "", err
	}
	s.logger.Debugw("refresh token created", "user_id", userID)
	return raw, nil
}

// Rotate обменивает токен на новый. Повторное предъявление отозванного токена
// отзывает все токены пользователя.
func (s *RefreshTokenService) Rotate(ctx context.Context, raw string) (*model.User, string, error) {
	t, err := s.tokens.GetByHash(ctx, hashToken(raw))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if t.Revoked || t.LastUsedAt != nil {
		return nil, "", s.reuseDetected(ctx, t.UserID)
	}
	if t.ExpiresAt.Before(s.now()) {
		return nil, "", ErrRefreshTokenExpired
	}

	marked, err := s.tokens.MarkUsed(ctx, t.ID, s.now().UTC())
	if err != nil {
		return nil, "", err
	}
	if !marked {
		// параллельная ротация успела первой
		return nil, "", s.reuseDetected(ctx, t.UserID)
	}

	u, err := s.users.GetUserByID(ctx, t.UserID)
	if err != nil {
		return nil, "", err
	}
	next, err := s.Create(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, next, nil
}

// Revoke отзывает все токены владельца raw. Неизвестный токен не считается ошибкой.
func (s *RefreshTokenService) Revoke(ctx context.Context, raw string) error {
	t, err := s.tokens.GetByHash(ctx, hashToken(raw))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.tokens.DeleteAllByUser(ctx, t.UserID)
}

func (s *RefreshTokenService) reuseDetected(ctx context.Context, userID string) error {
	s.logger.Warnw("refresh token reuse detected", "user_id", userID)
	if err := s.tokens.DeleteAllByUser(ctx, userID); err != nil {
		return err
	}
	return ErrRefreshTokenReused
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
