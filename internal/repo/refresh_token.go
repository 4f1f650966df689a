package repo

import (
	"context"
	"time"

	"HabitAuth/internal/model"

	"gorm.io/gorm"
)

// RefreshTokenRepository хранит хеши выданных refresh-токенов.
type RefreshTokenRepository interface {
	Create(ctx context.Context, t *model.RefreshToken) error

	// GetByHash возвращает токен по хешу или gorm.ErrRecordNotFound.
	GetByHash(ctx context.Context, hash string) (*model.RefreshToken, error)

	// MarkUsed отзывает токен, если он ещё не отозван. false — токен уже был использован.
	MarkUsed(ctx context.Context, id string, at time.Time) (bool, error)

	// DeleteAllByUser удаляет все refresh-токены пользователя.
	DeleteAllByUser(ctx context.Context, userID string) error
}

type refreshTokenRepo struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepo{db: db}
}

func (r *refreshTokenRepo) Create(ctx context.Context, t *model.RefreshToken) error {
	return translateError(r.db.WithContext(ctx).Create(t).Error)
}

func (r *refreshTokenRepo) GetByHash(ctx context.Context, hash string) (*model.RefreshToken, error) {
	var t model.RefreshToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *refreshTokenRepo) MarkUsed(ctx context.Context, id string, at time.Time) (bool, error) {
	// условный UPDATE: из двух параллельных ротаций выигрывает одна
	res := r.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("id = ? AND revoked = ?", id, false).
		Updates(map[string]any{"revoked": true, "last_used_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *refreshTokenRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{}).Error
}
