package handlers

import (
	"HabitAuth/internal/config"
	"HabitAuth/internal/middleware"
	"HabitAuth/internal/model"
	"HabitAuth/internal/service"
	"HabitAuth/internal/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	tokens *token.Manager,
	refreshTokens *service.RefreshTokenService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)

	authHandler := NewAuthHandler(userService, tokens, refreshTokens, logger, config)
	resourceHandler := ResourceHandler{}

	r.Route("/api/auth", func(r chi.Router) {
		// Basic-аутентификация нужна только /private
		r.With(middleware.WithBasicAuth(userService)).Get("/private", authHandler.Private)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/api/to", func(r chi.Router) {
		r.Use(middleware.WithBearerAuth(tokens))
		r.With(requireRole()).Get("/user", resourceHandler.UserView)
		r.With(requireRole(model.RoleAdmin)).Get("/admin", resourceHandler.AdminView)
	})

	return &Handler{Router: r}
}
