// File: internal/repository/loan.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// MaxActiveLoans 單一讀者可同時持有的未歸還借閱上限
const MaxActiveLoans = 3

// LoanDetail 借閱結果，附帶書名與讀者姓名供回應組裝
type LoanDetail struct {
	Loan      model.Loan
	BookTitle string
	UserName  string
}

// BorrowBook 借書流程，整段在單一交易內完成：
// 鎖定書籍與讀者列、檢查借閱上限與館藏量、扣減館藏並寫入借閱紀錄。
// 任一步驟失敗即回滾，不留下部分效果。
func BorrowBook(ctx context.Context, db database.DB, bookID, userID int) (*LoanDetail, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}
	defer tx.Rollback(ctx)

	// FOR UPDATE 鎖住書籍列，序列化同一本書的並發借閱
	var title string
	var amount int
	if err := tx.QueryRow(ctx,
		`SELECT title, amount FROM books WHERE id = $1 FOR UPDATE`,
		bookID,
	).Scan(&title, &amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}

	// 同樣鎖住讀者列，讓借閱上限檢查不受並發請求影響
	var userName string
	if err := tx.QueryRow(ctx,
		`SELECT name FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&userName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}

	var active int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM loans WHERE user_id = $1 AND return_date IS NULL`,
		userID,
	).Scan(&active); err != nil {
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}
	if active >= MaxActiveLoans {
		return nil, ErrLoanLimit
	}
	if amount <= 0 {
		return nil, ErrBookUnavailable
	}

	if _, err := tx.Exec(ctx,
		`UPDATE books SET amount = amount - 1 WHERE id = $1`,
		bookID,
	); err != nil {
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}

	loan := model.Loan{UserID: userID, BookID: bookID}
	if err := tx.QueryRow(ctx,
		`INSERT INTO loans (user_id, book_id, borrow_date)
		 VALUES ($1, $2, now())
		 RETURNING id, borrow_date`,
		userID,
		bookID,
	).Scan(&loan.ID, &loan.BorrowDate); err != nil {
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("BorrowBook: %w", err)
	}
	return &LoanDetail{Loan: loan, BookTitle: title, UserName: userName}, nil
}

// ReturnBook 還書流程，與借書相同在單一交易內完成。
// 同一組 (讀者, 書籍) 若有多筆未歸還紀錄，固定關閉 borrow_date 最早的一筆。
func ReturnBook(ctx context.Context, db database.DB, bookID, userID int) (*LoanDetail, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}
	defer tx.Rollback(ctx)

	var title string
	if err := tx.QueryRow(ctx,
		`SELECT title FROM books WHERE id = $1 FOR UPDATE`,
		bookID,
	).Scan(&title); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}

	var userName string
	if err := tx.QueryRow(ctx,
		`SELECT name FROM users WHERE id = $1`,
		userID,
	).Scan(&userName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}

	loan := model.Loan{UserID: userID, BookID: bookID}
	if err := tx.QueryRow(ctx,
		`SELECT id, borrow_date FROM loans
		 WHERE user_id = $1 AND book_id = $2 AND return_date IS NULL
		 ORDER BY borrow_date, id
		 LIMIT 1
		 FOR UPDATE`,
		userID,
		bookID,
	).Scan(&loan.ID, &loan.BorrowDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE books SET amount = amount + 1 WHERE id = $1`,
		bookID,
	); err != nil {
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}

	if err := tx.QueryRow(ctx,
		`UPDATE loans SET return_date = now() WHERE id = $1 RETURNING return_date`,
		loan.ID,
	).Scan(&loan.ReturnDate); err != nil {
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ReturnBook: %w", err)
	}
	return &LoanDetail{Loan: loan, BookTitle: title, UserName: userName}, nil
}

func ListLoans(ctx context.Context, db database.DB) ([]model.Loan, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, book_id, borrow_date, return_date
		 FROM loans ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListLoans: %w", err)
	}
	defer rows.Close()
	return scanLoans(rows)
}

// ListActiveLoansByUser 查詢指定讀者尚未歸還的借閱
func ListActiveLoansByUser(ctx context.Context, db database.DB, userID int) ([]model.Loan, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, book_id, borrow_date, return_date
		 FROM loans
		 WHERE user_id = $1 AND return_date IS NULL
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListActiveLoansByUser: %w", err)
	}
	defer rows.Close()
	return scanLoans(rows)
}

func scanLoans(rows pgx.Rows) ([]model.Loan, error) {
	loans := []model.Loan{}
	for rows.Next() {
		var l model.Loan
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.BookID,
			&l.BorrowDate,
			&l.ReturnDate,
		); err != nil {
			return nil, fmt.Errorf("scanLoans: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanLoans: %w", err)
	}
	return loans, nil
}
