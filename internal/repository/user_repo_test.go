package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"todoapi/internal/models"
)

func newMockUserRepo(t *testing.T) (*UserSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func testUser() userFixture {
	return userFixture{
		id:    "u-1",
		email: "alice@example.com",
		name:  "Alice",
		hash:  "$2a$10$hash",
	}
}

type userFixture struct {
	id, email, name, hash string
}

func userModel(f userFixture, created time.Time) models.User {
	return models.User{
		ID:           f.id,
		Email:        f.email,
		Name:         f.name,
		PasswordHash: f.hash,
		CreatedAt:    created,
	}
}

func TestUserSQLite_Create(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    error
		errContain string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice@example.com", "Alice", "$2a$10$hash", "2026-01-02 03:04:05").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "duplicate email",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice@example.com", "Alice", "$2a$10$hash", "2026-01-02 03:04:05").
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))
			},
			wantErr: ErrDuplicateEmail,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice@example.com", "Alice", "$2a$10$hash", "2026-01-02 03:04:05").
					WillReturnError(errors.New("db exec failed"))
			},
			errContain: "insert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			f := testUser()
			err := repo.Create(context.Background(), userModel(f, created))

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.errContain != "":
				if err == nil || !contains(err.Error(), tt.errContain) {
					t.Fatalf("expected error containing %q, got %v", tt.errContain, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestUserSQLite_GetByEmail(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
			AddRow("u-1", "alice@example.com", "Alice", "$2a$10$hash", created)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		u, err := repo.GetByEmail(context.Background(), "alice@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u == nil || u.ID != "u-1" || u.Name != "Alice" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u != nil {
			t.Fatalf("expected nil user, got %+v", u)
		}
	})

	t.Run("null name scans to empty string", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
			AddRow("u-2", "bob@example.com", nil, "h", created)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("bob@example.com").
			WillReturnRows(rows)

		u, err := repo.GetByEmail(context.Background(), "bob@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "" {
			t.Fatalf("expected empty name, got %q", u.Name)
		}
	})
}

func TestUserSQLite_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
			WithArgs("u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected ok=true")
		}
	})

	t.Run("absent row reports false", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
			WithArgs("u-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("expected ok=false for absent row")
		}
	})
}
