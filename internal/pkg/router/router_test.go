package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/router"
	"github.com/otpgate/otpgate/internal/pkg/session"
	"github.com/otpgate/otpgate/internal/pkg/uid"
	"github.com/stretchr/testify/require"
)

func newEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	const rbacModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj
`
	m, err := model.NewModelFromString(rbacModel)
	require.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)

	_, err = e.AddPolicies([][]string{{"USER", "USER"}, {"ADMIN", "ADMIN"}})
	require.NoError(t, err)
	_, err = e.AddGroupingPolicy("ADMIN", "USER")
	require.NoError(t, err)

	return e
}

func newTestServer(t *testing.T) (*httptest.Server, *session.Registry) {
	t.Helper()

	registry := session.NewRegistry(30*time.Minute, clock.New(), uid.NewUUID4())

	r := router.NewRouter(router.Config{
		UUID:       uid.NewUUID(),
		Sessions:   registry,
		Instrument: instrument.NewNoop(),
		Enforcer:   newEnforcer(t),
		PublicEndpoints: map[string]map[string]struct{}{
			http.MethodPost: {"/public": {}},
		},
	})

	r.POST("/public", func(req *router.Request) (any, error) {
		var body struct {
			Ping string `json:"ping"`
		}
		if err := req.DecodeBody(&body); err != nil {
			return nil, err
		}
		return map[string]string{"pong": body.Ping}, nil
	})
	r.GET("/user-only", func(*router.Request) (any, error) {
		return map[string]string{"ok": "user"}, nil
	}, r.RequireRole("USER"))
	r.GET("/admin-only", func(*router.Request) (any, error) {
		return map[string]string{"ok": "admin"}, nil
	}, r.RequireRole("ADMIN"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, registry
}

func doGet(t *testing.T, srv *httptest.Server, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body.Error
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Parallel()

	srv, registry := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		resp := doGet(t, srv, "/user-only", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Missing or invalid Authorization header", decodeError(t, resp))
	})

	t.Run("unknown token", func(t *testing.T) {
		resp := doGet(t, srv, "/user-only", "not-a-token")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Invalid or expired token", decodeError(t, resp))
	})

	t.Run("revoked token", func(t *testing.T) {
		sess := registry.Issue(1, "alice", "USER")
		registry.Revoke(sess.Token)

		resp := doGet(t, srv, "/user-only", sess.Token)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		sess := registry.Issue(1, "alice", "USER")

		resp := doGet(t, srv, "/user-only", sess.Token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("public endpoint skips auth", func(t *testing.T) {
		resp, err := srv.Client().Post(srv.URL+"/public", "application/json", strings.NewReader(`{"ping":"x"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAuthorizationMiddleware(t *testing.T) {
	t.Parallel()

	srv, registry := newTestServer(t)

	t.Run("user fails the admin gate", func(t *testing.T) {
		sess := registry.Issue(1, "alice", "USER")

		resp := doGet(t, srv, "/admin-only", sess.Token)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "Forbidden", decodeError(t, resp))
	})

	t.Run("admin passes the user gate", func(t *testing.T) {
		sess := registry.Issue(2, "root", "ADMIN")

		resp := doGet(t, srv, "/user-only", sess.Token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("admin passes the admin gate", func(t *testing.T) {
		sess := registry.Issue(2, "root", "ADMIN")

		resp := doGet(t, srv, "/admin-only", sess.Token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestContentTypeEnforcement(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/public", "text/plain", strings.NewReader(`{"ping":"x"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	require.Equal(t, "Content-Type must be application/json", decodeError(t, resp))
}

func TestRouterFallbacks(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	t.Run("unknown path", func(t *testing.T) {
		resp := doGet(t, srv, "/nowhere", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/public", nil)
		require.NoError(t, err)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
