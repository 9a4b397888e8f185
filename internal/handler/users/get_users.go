// File: internal/handler/users/get_users.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/model"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// GetUsersHandler 查詢讀者，帶 user_id 查單筆，否則回全部
// @Summary     Get users
// @Description 以 user_id 查詢單一讀者，未帶參數則回傳全部讀者
// @Tags        users
// @Produce     json
// @Param       user_id query int false "讀者 ID"
// @Success     200 {array} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /user/get [get]
func GetUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var list []model.User
		if idParam := c.QueryParam("user_id"); idParam != "" {
			id, err := strconv.Atoi(idParam)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid user_id"})
			}
			user, err := repository.GetUserByID(ctx, db, id)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
				}
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
			}
			list = []model.User{*user}
		} else {
			all, err := repository.ListUsers(ctx, db)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
			}
			list = all
		}

		resp := make([]dto.UserResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
