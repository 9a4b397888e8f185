// File: internal/repository/book.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateBook(ctx context.Context, db database.DB, b *model.Book) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO books (title, author, date, isbn, amount)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		b.Title,
		b.Author,
		b.Date,
		b.ISBN,
		b.Amount,
	)
	if err := row.Scan(&b.ID); err != nil {
		if mapped := mapBookWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("CreateBook: %w", err)
	}
	return b, nil
}

func GetBookByID(ctx context.Context, db database.DB, bookID int) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, author, date, isbn, amount
		 FROM books WHERE id = $1`,
		bookID,
	)
	b := &model.Book{}
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Date,
		&b.ISBN,
		&b.Amount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("GetBookByID: %w", err)
	}
	return b, nil
}

func ListBooks(ctx context.Context, db database.DB) ([]model.Book, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, author, date, isbn, amount
		 FROM books ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBooks: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Author,
			&b.Date,
			&b.ISBN,
			&b.Amount,
		); err != nil {
			return nil, fmt.Errorf("ListBooks: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBooks: %w", err)
	}
	return books, nil
}

func UpdateBook(ctx context.Context, db database.DB, b *model.Book) error {
	tag, err := db.Exec(ctx,
		`UPDATE books SET title = $1, author = $2, date = $3, isbn = $4, amount = $5
		 WHERE id = $6`,
		b.Title,
		b.Author,
		b.Date,
		b.ISBN,
		b.Amount,
		b.ID,
	)
	if err != nil {
		if mapped := mapBookWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("UpdateBook: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookNotFound
	}
	return nil
}

func DeleteBook(ctx context.Context, db database.DB, bookID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM books WHERE id = $1`,
		bookID,
	)
	if err != nil {
		return fmt.Errorf("DeleteBook: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookNotFound
	}
	return nil
}
