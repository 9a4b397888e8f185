// File: internal/handler/operations/return.go
package operations

import (
	"errors"
	"net/http"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// ReturnHandler 還書
// @Summary     Return a book
// @Description 關閉未歸還的借閱紀錄並回補館藏；查無未歸還紀錄回 400
// @Tags        operations
// @Accept      json
// @Produce     json
// @Param       payload body dto.OperationRequest true "書籍與讀者 ID"
// @Success     200 {object} dto.OperationResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /operation/return [post]
func ReturnHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.OperationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		detail, err := repository.ReturnBook(c.Request().Context(), db, req.BookID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrBookNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "Book not found"})
			case errors.Is(err, repository.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			case errors.Is(err, repository.ErrLoanNotFound):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "Such book wasn't borrowed by this user or it was already returned"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.OperationResponse{
			Status:     "success",
			Book:       detail.BookTitle,
			BookID:     req.BookID,
			User:       detail.UserName,
			UserID:     req.UserID,
			ReturnDate: detail.Loan.ReturnDate,
		})
	}
}
