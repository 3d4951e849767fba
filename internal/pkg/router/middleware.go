package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(next http.Handler) http.Handler

// Chain applies middlewares to h so the first middleware runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// matchedRoutePath returns the registered route pattern for the request,
// falling back to the raw URL path before route resolution.
func matchedRoutePath(r *http.Request) string {
	if p := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); p != "" {
		return p
	}
	return r.URL.Path
}
