package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/auth"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
)

// AdminOnly guards the mutating configuration routes; only tokens carrying
// the admin claim pass.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
