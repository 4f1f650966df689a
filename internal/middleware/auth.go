package middleware

import (
	"context"
	"net/http"

	"HabitAuth/internal/model"
)

// Authenticator проверяет учётные данные из заголовка Authorization.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type ctxKey int

const userKey ctxKey = iota

// WithBasicAuth кладёт пользователя в контекст, если запрос несёт валидные Basic-учётные данные.
// Анонимные и неверные запросы пропускаются дальше без пользователя: решение принимает хендлер.
func WithBasicAuth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			u, err := a.Authenticate(r.Context(), username, password)
			if err != nil {
				sugar.Debugw("basic auth rejected", "username", username, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// GetUserFromContext returns the user set by WithBasicAuth.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok && u != nil
}
