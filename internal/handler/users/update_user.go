// File: internal/handler/users/update_user.go
package users

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// UpdateUserHandler 更新讀者資料，僅覆寫有帶的欄位
// @Summary     Update a user by ID
// @Description 依讀者 ID 局部更新姓名與 Email，重複 Email 回 409
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int                   true "讀者 ID"
// @Param       payload body dto.UpdateUserRequest true "更新欄位"
// @Success     200 {object} dto.UserStatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /user/update/{user_id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid user ID"})
		}

		var req dto.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		ctx := c.Request().Context()

		user, err := repository.GetUserByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = strings.ToLower(*req.Email)
		}

		if err := repository.UpdateUser(ctx, db, user); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			case errors.Is(err, repository.ErrEmailTaken):
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "Email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.UserStatusResponse{Status: "success", Email: user.Email})
	}
}
