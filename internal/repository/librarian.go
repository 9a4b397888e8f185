// File: internal/repository/librarian.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateLibrarian(ctx context.Context, db database.DB, l *model.Librarian) (*model.Librarian, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO librarians (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		l.Email,
		l.PasswordHash,
	)
	if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateLibrarian: %w", err)
	}
	return l, nil
}

func GetLibrarianByEmail(ctx context.Context, db database.DB, email string) (*model.Librarian, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at
		 FROM librarians WHERE email = $1`,
		email,
	)
	l := &model.Librarian{}
	if err := row.Scan(
		&l.ID,
		&l.Email,
		&l.PasswordHash,
		&l.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLibrarianNotFound
		}
		return nil, fmt.Errorf("GetLibrarianByEmail: %w", err)
	}
	return l, nil
}
