package repo

import (
	"errors"
	"fmt"
	"strings"

	"HabitAuth/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// InitDB открывает БД по DSN и выполняет миграции.
// DSN вида postgres:// или postgresql:// обслуживается драйвером Postgres,
// всё остальное считается путём/URI SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// postgres: нарушения уникальности приходят как gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	var dial gorm.Dialector
	if isPostgres(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}
	if !isPostgres(dsn) {
		// SQLite: один писатель, держим одно соединение
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.RefreshToken{}); err != nil {
		return nil, err
	}
	return db, nil
}

// translateError приводит нарушение уникального ключа к gorm.ErrDuplicatedKey.
// Транслятор gorm для SQLite не распознаёт ошибки modernc, поэтому код проверяется здесь.
func translateError(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
		}
	}
	return err
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
