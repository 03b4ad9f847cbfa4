package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.Role(roleStr), true
}

// RequireApprover admits managers, HR and admins. Finer-grained rules,
// like the HR own-department exclusion, live in the services.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || !role.IsApprover() {
			response.Forbidden(w, "Approver role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePayrollOperator admits HR and admins.
func RequirePayrollOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || !role.IsPayrollOperator() {
			response.Forbidden(w, "Payroll operator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin admits admins only.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != employee.RoleAdmin {
			response.Forbidden(w, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
