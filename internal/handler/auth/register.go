// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/model"
	"library-api/internal/repository"
	"library-api/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新館員帳號
// @Summary     Register a librarian
// @Description 接收 Email 與密碼並建立館員帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body dto.CredentialsRequest true "館員憑證"
// @Success     200 {object} dto.RegisterResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /librarians_registration [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CredentialsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		// 密碼哈希
		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "failed to hash password"})
		}

		librarian := &model.Librarian{
			Email:        req.Email,
			PasswordHash: hash,
		}
		if _, err := repository.CreateLibrarian(c.Request().Context(), db, librarian); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "Email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.RegisterResponse{Status: "success", Email: req.Email})
	}
}
