package router

import (
	"net/http"
	"strings"

	"github.com/otpgate/otpgate/internal/pkg/session"
)

func middlewareAuthentication(registry *session.Registry, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, errorResponse{Error: "Missing or invalid Authorization header"}, http.StatusUnauthorized)
				return
			}

			sess, ok := registry.Lookup(p[1])
			if !ok {
				writeJSON(w, errorResponse{Error: "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			ctx := session.SetAuth(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
