// File: internal/model/loan.go
package model

import "time"

// Loan 借閱紀錄，ReturnDate 為 nil 表示尚未歸還
type Loan struct {
	ID         int        `db:"id" json:"id"`
	UserID     int        `db:"user_id" json:"user_id"`
	BookID     int        `db:"book_id" json:"book_id"`
	BorrowDate time.Time  `db:"borrow_date" json:"borrow_date"`
	ReturnDate *time.Time `db:"return_date" json:"return_date"`
}
