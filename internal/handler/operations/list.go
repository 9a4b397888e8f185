// File: internal/handler/operations/list.go
package operations

import (
	"errors"
	"net/http"
	"strconv"

	"library-api/internal/database"
	"library-api/internal/dto"
	"library-api/internal/model"
	"library-api/internal/repository"
	"library-api/internal/snapshot"

	"github.com/labstack/echo/v4"
)

func toLoanResponses(loans []model.Loan) []dto.LoanResponse {
	resp := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		resp = append(resp, dto.LoanResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			BookID:     l.BookID,
			BorrowDate: l.BorrowDate,
			ReturnDate: l.ReturnDate,
		})
	}
	return resp
}

// ListBorrowedHandler 回傳全部借閱紀錄
// @Summary     List all borrow records
// @Description 回傳所有借閱紀錄（含已歸還），並複寫一份快照到 Redis
// @Tags        operations
// @Produce     json
// @Success     200 {array} dto.LoanResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /operation/get_all_borrowed_books [get]
func ListBorrowedHandler(db database.DB, snaps snapshot.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		loans, err := repository.ListLoans(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		// 查詢結果複寫到快照，best-effort
		snaps.RecordLoans(loans)

		return c.JSON(http.StatusOK, toLoanResponses(loans))
	}
}

// ListUnreturnedHandler 回傳指定讀者未歸還的借閱
// @Summary     List unreturned books for a user
// @Tags        operations
// @Produce     json
// @Param       user_id path int true "讀者 ID"
// @Success     200 {object} dto.UnreturnedResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /operation/get_unreturned_books/{user_id} [get]
func ListUnreturnedHandler(db database.DB, snaps snapshot.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid user ID"})
		}

		ctx := c.Request().Context()

		if _, err := repository.GetUserByID(ctx, db, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Detail: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		loans, err := repository.ListActiveLoansByUser(ctx, db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error"})
		}

		snaps.RecordUserLoans(userID, loans)

		return c.JSON(http.StatusOK, dto.UnreturnedResponse{
			Operation:       "success",
			UnreturnedBooks: toLoanResponses(loans),
		})
	}
}
