package handlers

import (
	"net/http"
	"slices"

	"HabitAuth/internal/middleware"
)

const msgAccessDenied = "You are not allowed to access this resource"

// requireRole пропускает только запросы с валидным Bearer-токеном одной из ролей.
// Без токена — 401, с чужой ролью — 403.
func requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := middleware.GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
				return
			}
			if len(roles) > 0 && !slices.Contains(roles, c.Role) {
				writeError(w, http.StatusForbidden, msgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ResourceHandler обслуживает защищённые токеном ресурсы /api/to/*.
type ResourceHandler struct{}

type resourceResponse struct {
	View     string `json:"view"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserView доступен любому аутентифицированному пользователю.
func (ResourceHandler) UserView(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "user")
}

// AdminView доступен только ROLE_ADMIN.
func (ResourceHandler) AdminView(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "admin")
}

func writeView(w http.ResponseWriter, r *http.Request, view string) {
	c, _ := middleware.GetClaimsFromContext(r.Context())
	writeJSON(w, http.StatusOK, resourceResponse{View: view, Username: c.Username, Role: c.Role})
}
