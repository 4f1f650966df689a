package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"HabitAuth/internal/config"
	"HabitAuth/internal/middleware"
	"HabitAuth/internal/service"
	"HabitAuth/internal/token"

	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid Credentials!"
	refreshCookieName     = "refreshToken"
	refreshCookiePath     = "/api/auth"
)

// AuthHandler обслуживает /api/auth/*.
type AuthHandler struct {
	UserService   *service.UserService
	Tokens        *token.Manager
	RefreshTokens *service.RefreshTokenService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

func NewAuthHandler(
	userService *service.UserService,
	tokens *token.Manager,
	refreshTokens *service.RefreshTokenService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		UserService:   userService,
		Tokens:        tokens,
		RefreshTokens: refreshTokens,
		Logger:        logger,
		Config:        cfg,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type principalResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Private отвечает 200 только запросам с валидной Basic-аутентификацией.
func (h *AuthHandler) Private(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	writeJSON(w, http.StatusOK, principalResponse{Username: u.Username, Role: u.Role})
}

// Register создаёт пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrEmptyCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrLoginTaken):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Logger.Infow("user registered", "user_id", u.ID, "username", u.Username)
	writeJSON(w, http.StatusCreated, principalResponse{Username: u.Username, Role: u.Role})
}

// Login выдаёт access-токен по логину и паролю из JSON-тела, refresh-токен уходит в cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.issueTokens(w, r, u.ID, u.Username, u.Role)
}

// Refresh обменивает refresh-cookie на новую пару токенов.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(refreshCookieName)
	if err != nil || c.Value == "" {
		writeError(w, http.StatusUnauthorized, "refresh token is missing")
		return
	}

	u, next, err := h.RefreshTokens.Rotate(r.Context(), c.Value)
	switch {
	case errors.Is(err, service.ErrRefreshTokenReused):
		h.clearRefreshCookie(w)
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	case errors.Is(err, service.ErrRefreshTokenNotFound), errors.Is(err, service.ErrRefreshTokenExpired):
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	case err != nil:
		h.Logger.Errorw("Refresh: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	tok, err := h.Tokens.Generate(u.ID, u.Username, u.Role)
	if err != nil {
		h.Logger.Errorw("Refresh: token error", "user_id", u.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.setRefreshCookie(w, next)
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: tok})
}

// Logout отзывает refresh-токены пользователя и удаляет cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(refreshCookieName); err == nil && c.Value != "" {
		if err := h.RefreshTokens.Revoke(r.Context(), c.Value); err != nil {
			h.Logger.Errorw("Logout: revoke error", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}
	h.clearRefreshCookie(w)
	w.WriteHeader(http.StatusOK)
}

func (h *AuthHandler) issueTokens(w http.ResponseWriter, r *http.Request, userID, username, role string) {
	tok, err := h.Tokens.Generate(userID, username, role)
	if err != nil {
		h.Logger.Errorw("Login: token error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	refresh, err := h.RefreshTokens.Create(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Login: refresh token error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.setRefreshCookie(w, refresh)
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: tok})
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     refreshCookiePath,
		MaxAge:   int(h.Config.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Config.EnableHTTPS,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Config.EnableHTTPS,
		SameSite: http.SameSiteLaxMode,
	})
}
