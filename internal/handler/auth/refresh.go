// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"library-api/internal/dto"
	"library-api/internal/middleware"
	"library-api/internal/service"
	"library-api/internal/snapshot"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以 refresh 令牌換發新的 access 令牌
// @Summary     更新存取令牌
// @Description 驗證 refresh 令牌後發行新的 access 令牌，refresh 令牌原樣回傳
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.TokensResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /refresh_token [post]
func RefreshHandler(ts *service.TokenService, snaps snapshot.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextLibrarianKey)
		claims, ok := claimsRaw.(*service.Claims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Detail: "invalid or missing token"})
		}

		access, err := ts.Issue(claims.Subject, service.TokenAccess)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "failed to issue token"})
		}

		// refresh 令牌沿用原本那把
		refresh, err := middleware.BearerToken(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Detail: "missing token"})
		}

		snaps.RecordTokens(claims.Subject, access, refresh)

		return c.JSON(http.StatusOK, dto.TokensResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
		})
	}
}
