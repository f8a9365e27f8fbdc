package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/auth"
	"github.com/zenwork-hr/leave-backend-go/internal/handler/http/response"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/validator"
)

// RequireCompany rejects tokens without a usable company_id claim. Every
// configuration entity is scoped to a company, so a token without one cannot
// address anything. The claim is also checked to be a well-formed UUID so a
// malformed token surfaces here instead of as a database cast error.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !validator.IsValidUUID(CompanyID(r)) {
			response.HandleError(w, auth.ErrCompanyIDRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CompanyID extracts the company_id claim, or "" when absent.
func CompanyID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	companyID, _ := claims["company_id"].(string)
	return companyID
}
