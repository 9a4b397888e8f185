package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTokenService(t *testing.T) *service.TokenService {
	t.Helper()
	ts, err := service.NewTokenService(service.TokenConfig{
		Secret:     "testsecret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)
	return ts
}

func TestBearerToken(t *testing.T) {
	// missing header
	ctx, _ := newContext("")
	_, err := BearerToken(ctx)
	require.Error(t, err)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = BearerToken(ctx)
	require.Error(t, err)

	// ok
	ctx, _ = newContext("Bearer sometoken")
	tok, err := BearerToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "sometoken", tok)
}

func TestRequireAuth(t *testing.T) {
	ts := newTokenService(t)
	tok, err := ts.Issue("lib@example.com", service.TokenAccess)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(ts)(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextLibrarianKey).(*service.Claims)
		require.Equal(t, "lib@example.com", cl.Subject)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	called = false
	err = RequireAuth(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestRequireAuthRejectsRefreshToken(t *testing.T) {
	ts := newTokenService(t)
	refresh, err := ts.Issue("lib@example.com", service.TokenRefresh)
	require.NoError(t, err)

	// refresh 令牌不得通過 access 檢查
	ctx, _ := newContext("Bearer " + refresh)
	called := false
	err = RequireAuth(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestRequireRefresh(t *testing.T) {
	ts := newTokenService(t)
	refresh, err := ts.Issue("lib@example.com", service.TokenRefresh)
	require.NoError(t, err)
	access, err := ts.Issue("lib@example.com", service.TokenAccess)
	require.NoError(t, err)

	// refresh ok
	ctx, rec := newContext("Bearer " + refresh)
	called := false
	err = RequireRefresh(ts)(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// access 令牌不得通過 refresh 檢查
	ctx, _ = newContext("Bearer " + access)
	called = false
	err = RequireRefresh(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}
