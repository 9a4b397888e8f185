// File: internal/repository/errors.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 領域錯誤，handler 以 errors.Is 對應 HTTP 狀態碼
var (
	ErrLibrarianNotFound = errors.New("librarian not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrLoanNotFound      = errors.New("no active loan for this user and book")

	ErrEmailTaken    = errors.New("email already exists")
	ErrISBNTaken     = errors.New("isbn already exists")
	ErrBookExists    = errors.New("book already exists")
	ErrInvalidAmount = errors.New("amount out of range")

	ErrLoanLimit       = errors.New("user has reached the active loan limit")
	ErrBookUnavailable = errors.New("book is not available")
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// pgErrCode 取出 PostgreSQL 錯誤碼，非 PgError 回傳空字串
func pgErrCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// mapBookWriteError 將 books 寫入的約束違反轉為領域錯誤
// 唯一性交由資料庫約束判定，避免先查再寫的競態
func mapBookWriteError(err error) error {
	switch code, constraint := pgErrCode(err); {
	case code == pgUniqueViolation && constraint == "books_isbn_key":
		return ErrISBNTaken
	case code == pgUniqueViolation:
		return ErrBookExists
	case code == pgCheckViolation:
		return ErrInvalidAmount
	}
	return nil
}

func isUniqueViolation(err error) bool {
	code, _ := pgErrCode(err)
	return code == pgUniqueViolation
}
