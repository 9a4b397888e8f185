package repository

import (
	"context"
	"testing"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	sample := &model.User{ID: 7, Name: "Alice", Email: "alice@example.com"}

	t.Run("CreateUser success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{vals: []any{42}}
			},
		}
		u := &model.User{Name: "Bob", Email: "bob@example.com"}
		created, err := CreateUser(context.Background(), db, u)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("GetUserByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{vals: []any{sample.ID, sample.Name, sample.Email}}
			},
		}
		u, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrUserNotFound)
		require.Nil(t, u)
	})

	t.Run("ListUsers success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{
					{1, "Alice", "alice@example.com"},
					{2, "Bob", "bob@example.com"},
				}}, nil
			},
		}
		users, err := ListUsers(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "bob@example.com", users[1].Email)
	})

	t.Run("UpdateUser success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateUser(context.Background(), db, sample))
	})

	t.Run("UpdateUser not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, UpdateUser(context.Background(), db, sample), ErrUserNotFound)
	})

	t.Run("UpdateUser duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
			},
		}
		require.ErrorIs(t, UpdateUser(context.Background(), db, sample), ErrEmailTaken)
	})

	t.Run("DeleteUser success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteUser(context.Background(), db, 7))
	})

	t.Run("DeleteUser not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteUser(context.Background(), db, 7), ErrUserNotFound)
	})
}
