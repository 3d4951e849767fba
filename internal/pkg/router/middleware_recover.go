package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

//nolint:errcheck,gosec // ignore error
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)

				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", string(debug.Stack()))

				json.NewEncoder(w).Encode(errorResponse{Error: "Internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
