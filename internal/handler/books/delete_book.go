// File: internal/handler/books/delete_book.go
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

// DeleteBookHandler 刪除書籍
// @Summary     Delete a book by ID
// @Tags        books
// @Produce     json
// @Param       book_id path int true "書籍 ID"
// @Success     200 {object} dto.UpdateBookResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /book/delete/{book_id} [delete]
func DeleteBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid book ID"})
		}

		if err := repository.DeleteBook(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "Book not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.UpdateBookResponse{Status: "success", BookID: id})
	}
}
