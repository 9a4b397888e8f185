// File: internal/handler/books/get_books.go
package books

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

// GetBooksHandler 查詢書籍，帶 book_id 查單本，否則回全部
// @Summary     Get books
// @Description 以 book_id 查詢單本書籍，未帶參數則回傳全部館藏
// @Tags        books
// @Produce     json
// @Param       book_id query int false "書籍 ID"
// @Success     200 {array} dto.BookResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /book/get [get]
func GetBooksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var books []model.Book
		if idParam := c.QueryParam("book_id"); idParam != "" {
			id, err := strconv.Atoi(idParam)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid book_id"})
			}
			book, err := repository.GetBookByID(ctx, db, id)
			if err != nil {
				if errors.Is(err, repository.ErrBookNotFound) {
					return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "Book not found"})
				}
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
			}
			// 單本也回傳單元素陣列，與全表查詢同形
			books = []model.Book{*book}
		} else {
			all, err := repository.ListBooks(ctx, db)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
			}
			books = all
		}

		resp := make([]dto.BookResponse, 0, len(books))
		for _, b := range books {
			resp = append(resp, dto.BookResponse{
				ID:     b.ID,
				Title:  b.Title,
				Author: b.Author,
				Date:   b.Date,
				ISBN:   b.ISBN,
				Amount: b.Amount,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
