// File: internal/handler/users/create_user.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/model"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler 建立新讀者
// @Summary     Create a new user
// @Description 接收讀者資料並建立帳號 (Email 會自動轉小寫)，重複 Email 回 409
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       payload body dto.CreateUserRequest true "讀者資料"
// @Success     200 {object} dto.UserStatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /user/create [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		user := &model.User{Name: req.Name, Email: req.Email}
		if _, err := repository.CreateUser(c.Request().Context(), db, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "User already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.UserStatusResponse{Status: "success", Email: user.Email})
	}
}
