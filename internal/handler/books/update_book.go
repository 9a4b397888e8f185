// File: internal/handler/books/update_book.go
package books

import (
	"errors"
	"net/http"
	"strconv"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// UpdateBookHandler 更新書籍，僅覆寫有帶的欄位
// @Summary     Update a book by ID
// @Description 依書籍 ID 局部更新書名、作者、日期、ISBN 與館藏數量
// @Tags        books
// @Accept      json
// @Produce     json
// @Param       book_id path int                   true "書籍 ID"
// @Param       payload body dto.UpdateBookRequest true "更新欄位"
// @Success     200 {object} dto.UpdateBookResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /book/update/{book_id} [put]
func UpdateBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid book ID"})
		}

		var req dto.UpdateBookRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		ctx := c.Request().Context()

		// 先取現況再套用局部更新
		book, err := repository.GetBookByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "Book not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		if req.Title != nil {
			book.Title = *req.Title
		}
		if req.Author != nil {
			book.Author = *req.Author
		}
		if req.Date != nil {
			book.Date = req.Date
		}
		if req.ISBN != nil {
			book.ISBN = req.ISBN
		}
		if req.Amount != nil {
			book.Amount = *req.Amount
		}

		if err := repository.UpdateBook(ctx, db, book); err != nil {
			switch {
			case errors.Is(err, repository.ErrBookNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "Book not found"})
			case errors.Is(err, repository.ErrISBNTaken):
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "ISBN already exists"})
			case errors.Is(err, repository.ErrBookExists):
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "Book already exists"})
			case errors.Is(err, repository.ErrInvalidAmount):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "Amount cannot be negative"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.UpdateBookResponse{Status: "success", BookID: book.ID})
	}
}
