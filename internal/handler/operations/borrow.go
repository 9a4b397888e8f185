// File: internal/handler/operations/borrow.go
package operations

import (
	"errors"
	"net/http"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// BorrowHandler 借書
// @Summary     Borrow a book
// @Description 扣減館藏並建立借閱紀錄；超過借閱上限或館藏不足時拒絕
// @Tags        operations
// @Accept      json
// @Produce     json
// @Param       payload body dto.OperationRequest true "書籍與讀者 ID"
// @Success     200 {object} dto.OperationResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /operation/borrow [post]
func BorrowHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.OperationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		detail, err := repository.BorrowBook(c.Request().Context(), db, req.BookID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrBookNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "Book not found"})
			case errors.Is(err, repository.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			case errors.Is(err, repository.ErrLoanLimit):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "User has already borrowed 3 books"})
			case errors.Is(err, repository.ErrBookUnavailable):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "Book is not available"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.OperationResponse{
			Status: "success",
			Book:   detail.BookTitle,
			BookID: req.BookID,
			User:   detail.UserName,
			UserID: req.UserID,
		})
	}
}
