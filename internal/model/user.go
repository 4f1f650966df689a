package model

import "time"

const (
	// RoleUser — роль, назначаемая новым пользователям.
	RoleUser = "ROLE_USER"
	// RoleAdmin открывает /api/to/admin.
	RoleAdmin = "ROLE_ADMIN"
)

// User — серверная модель учётной записи.
type User struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
