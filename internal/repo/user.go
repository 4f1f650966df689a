package repo

import (
	"context"

	"HabitAuth/internal/model"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к пользователям для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет пользователя. Занятый логин возвращается как gorm.ErrDuplicatedKey.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByUsername возвращает пользователя или gorm.ErrRecordNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// GetUserByID возвращает пользователя или gorm.ErrRecordNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт gorm-реализацию UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
