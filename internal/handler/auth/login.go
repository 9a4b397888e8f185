// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/repository"
	"library-api/internal/service"
	"library-api/internal/snapshot"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳令牌配對
// @Summary     登入館員
// @Description 使用 Email 與 Password 進行驗證，回傳 access 與 refresh 令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body dto.CredentialsRequest true "館員憑證"
// @Success     200 {object} dto.TokensResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /librarians_login [post]
func LoginHandler(db database.DB, ts *service.TokenService, snaps snapshot.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CredentialsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// 撈館員資料，查無與密碼錯誤一律回 401 不區分
		librarian, err := repository.GetLibrarianByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Detail: "invalid credentials"})
		}
		if err := service.ComparePassword(librarian.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Detail: "invalid credentials"})
		}

		// 發行令牌配對
		access, refresh, err := ts.IssuePair(librarian.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "failed to issue tokens"})
		}

		// 令牌副本寫入快照，best-effort
		snaps.RecordTokens(librarian.Email, access, refresh)

		return c.JSON(http.StatusOK, dto.TokensResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
		})
	}
}
