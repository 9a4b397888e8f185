package repository

import (
	"context"
	"errors"
	"testing"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{vals: []any{1}}
			},
		}
		b := &model.Book{Title: "T", Author: "A", Amount: 2}
		created, err := CreateBook(context.Background(), db, b)
		require.NoError(t, err)
		require.Equal(t, 1, created.ID)
	})

	t.Run("isbn conflict", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"}}
			},
		}
		_, err := CreateBook(context.Background(), db, &model.Book{ISBN: strPtr("123")})
		require.ErrorIs(t, err, ErrISBNTaken)
	})

	t.Run("duplicate book conflict", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "books_title_author_date_key"}}
			},
		}
		_, err := CreateBook(context.Background(), db, &model.Book{})
		require.ErrorIs(t, err, ErrBookExists)
	})

	t.Run("amount check violation", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: &pgconn.PgError{Code: "23514", ConstraintName: "books_amount_check"}}
			},
		}
		_, err := CreateBook(context.Background(), db, &model.Book{Amount: -1})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestGetBookByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{vals: []any{5, "T", "A", strPtr("2000-01-01"), strPtr("123"), 4}}
			},
		}
		b, err := GetBookByID(context.Background(), db, 5)
		require.NoError(t, err)
		require.Equal(t, 5, b.ID)
		require.Equal(t, 4, b.Amount)
		require.Equal(t, "123", *b.ISBN)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: pgx.ErrNoRows}
			},
		}
		b, err := GetBookByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrBookNotFound)
		require.Nil(t, b)
	})
}

func TestListBooks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{
					{1, "T1", "A1", (*string)(nil), (*string)(nil), 2},
					{2, "T2", "A2", strPtr("2001-01-01"), strPtr("456"), 0},
				}}, nil
			},
		}
		books, err := ListBooks(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, books, 2)
		require.Equal(t, "T2", books[1].Title)
		require.Nil(t, books[0].ISBN)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query failed")
			},
		}
		_, err := ListBooks(context.Background(), db)
		require.Error(t, err)
	})
}

func TestUpdateBook(t *testing.T) {
	sample := &model.Book{ID: 5, Title: "T", Author: "A", Amount: 1}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateBook(context.Background(), db, sample))
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, UpdateBook(context.Background(), db, sample), ErrBookNotFound)
	})

	t.Run("isbn conflict", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"}
			},
		}
		require.ErrorIs(t, UpdateBook(context.Background(), db, sample), ErrISBNTaken)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteBook(context.Background(), db, 5))
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteBook(context.Background(), db, 5), ErrBookNotFound)
	})
}
