package middleware

import (
	"net/http"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/utils"
)

// RequireAdmin gates a route to ADMIN callers. The role comes from a store
// lookup at request time rather than from the token, so role changes take
// effect without re-login.
func RequireAdmin(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := UserID(r.Context())
			if !ok {
				utils.JSONError(w, http.StatusUnauthorized, "Token não fornecido")
				return
			}

			u, err := users.GetByID(r.Context(), uid)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Usuário não autenticado")
				return
			}

			if u.Role != models.RoleAdmin {
				utils.JSONError(w, http.StatusForbidden, "Acesso negado")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
