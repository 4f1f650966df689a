package model

import "time"

// RefreshToken — выданный refresh-токен. В БД хранится только SHA-256 хеш.
type RefreshToken struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	UserID     string    `gorm:"index;not null"`
	TokenHash  string    `gorm:"uniqueIndex;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	Revoked    bool      `gorm:"not null"`
	LastUsedAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
