// File: internal/handler/users/delete_user.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 刪除讀者
// @Summary     Delete a user by ID
// @Tags        users
// @Produce     json
// @Param       user_id path int true "讀者 ID"
// @Success     200 {object} dto.UserStatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /user/delete/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid user ID"})
		}

		ctx := c.Request().Context()

		// 先查一次以便回應 Email，查無即 404
		user, err := repository.GetUserByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		if err := repository.DeleteUser(ctx, db, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.UserStatusResponse{Status: "success", Email: user.Email})
	}
}
