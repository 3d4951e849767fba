package router

import (
	"log/slog"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/otpgate/otpgate/internal/pkg/session"
)

// middlewareAuthorization gates a route on a minimum role.
//
// The enforcer model makes a role satisfy a gate when it equals the required
// role or inherits it (ADMIN inherits USER, never the other way around).
func middlewareAuthorization(enforcer *casbin.Enforcer, minRole string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.GetAuth(r.Context())
			if sess == nil {
				writeJSON(w, errorResponse{Error: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			ok, err := enforcer.Enforce(sess.Role, minRole)
			if err != nil {
				slog.ErrorContext(r.Context(), "failed to check authorization", "user_id", sess.UserID, "error", err)
				writeJSON(w, errorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
				return
			}

			if !ok {
				writeJSON(w, errorResponse{Error: "Forbidden"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
