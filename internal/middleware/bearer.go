package middleware

import (
	"context"
	"net/http"
	"strings"

	"HabitAuth/internal/token"
)

// TokenValidator проверяет access-токен.
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

const claimsKey ctxKey = iota + 1

// WithBearerAuth кладёт claims в контекст, если запрос несёт валидный
// "Authorization: Bearer <jwt>". Остальные запросы проходят анонимно.
func WithBearerAuth(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := v.Validate(raw)
			if err != nil {
				sugar.Debugw("bearer token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	raw := strings.TrimSpace(h[len(prefix):])
	return raw, raw != ""
}

// WithClaims returns a context carrying validated token claims.
func WithClaims(ctx context.Context, c *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// GetClaimsFromContext returns the claims set by WithBearerAuth.
func GetClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*token.Claims)
	return c, ok && c != nil
}
