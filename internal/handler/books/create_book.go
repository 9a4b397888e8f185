// File: internal/handler/books/create_book.go
package books

import (
	"errors"
	"net/http"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/model"
	"library-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// CreateBookHandler 新增書籍
// @Summary     Create a new book
// @Description 接收書籍資料並建立館藏，同書名/作者/日期或重複 ISBN 回 409
// @Tags        books
// @Accept      json
// @Produce     json
// @Param       payload body dto.CreateBookRequest true "書籍資料"
// @Success     200 {object} dto.CreateBookResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /book/create [post]
func CreateBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateBookRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: err.Error()})
		}

		book := &model.Book{
			Title:  req.Title,
			Author: req.Author,
			Date:   req.Date,
			ISBN:   req.ISBN,
			Amount: req.Amount,
		}
		if _, err := repository.CreateBook(c.Request().Context(), db, book); err != nil {
			switch {
			case errors.Is(err, repository.ErrISBNTaken):
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "ISBN already exists"})
			case errors.Is(err, repository.ErrBookExists):
				return c.JSON(http.StatusConflict, dto.HTTPError{Detail: "Book already exists"})
			case errors.Is(err, repository.ErrInvalidAmount):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "Amount out of range"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, dto.CreateBookResponse{Status: "success", Book: book.Title})
	}
}
