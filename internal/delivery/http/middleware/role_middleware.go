package middleware

import (
	"net/http"

	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/pkg/response"
)

// RequireRole creates a middleware that checks if the session user has any of the roles.
// The session is read from context (set by AuthMiddleware).
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Session not found")
				return
			}
			role, ok := sess.Role()
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireStaff is a convenience middleware for staff-only endpoints
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleStaff)(next)
}
