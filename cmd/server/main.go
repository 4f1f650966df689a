package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"HabitAuth/internal/config"
	"HabitAuth/internal/handlers"
	"HabitAuth/internal/logger"
	"HabitAuth/internal/middleware"
	"HabitAuth/internal/repo"
	"HabitAuth/internal/service"
	"HabitAuth/internal/token"
)

func main() {
	cfg := config.NewConfig()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := log.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := log.Sync(); err != nil {
			sugar.Debugw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)
	if cfg.SeedUser != "" {
		created, err := userService.EnsureUser(ctx, cfg.SeedUser, cfg.SeedPassword)
		if err != nil {
			sugar.Fatalw("failed to seed user", "username", cfg.SeedUser, "error", err)
		}
		sugar.Infow("Seed user", "username", cfg.SeedUser, "created", created)
	}

	tokens := token.NewManager(cfg.AuthSecret, cfg.TokenTTL)
	refreshTokens := service.NewRefreshTokenService(repo.NewRefreshTokenRepository(gormDB), userRepo, cfg.RefreshTTL, sugar)
	h := handlers.NewHandler(userService, tokens, refreshTokens, sugar, cfg)

	srv := &http.Server{Addr: cfg.BaseURL, Handler: h.Router}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"TokenTTL", cfg.TokenTTL,
		"RefreshTTL", cfg.RefreshTTL,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
