package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"library-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextLibrarianKey 存放已驗證館員 claims 的 context key
const ContextLibrarianKey = "librarian"

// BearerToken 取出 Authorization 標頭中的 bearer token
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

func extractClaims(c echo.Context, ts *service.TokenService, kind service.TokenKind) (*service.Claims, error) {
	tokenString, err := BearerToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := ts.Verify(tokenString, kind)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 access 令牌，通過後將 claims 放入 context
func RequireAuth(ts *service.TokenService) echo.MiddlewareFunc {
	return requireKind(ts, service.TokenAccess)
}

// RequireRefresh 驗證 refresh 令牌，僅用於 /refresh_token
func RequireRefresh(ts *service.TokenService) echo.MiddlewareFunc {
	return requireKind(ts, service.TokenRefresh)
}

func requireKind(ts *service.TokenService, kind service.TokenKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, ts, kind)
			if err != nil {
				return err
			}
			c.Set(ContextLibrarianKey, claims)
			return next(c)
		}
	}
}
