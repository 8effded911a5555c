package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todoapi/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

// SQLite TIMESTAMP format
const timeLayout = "2006-01-02 15:04:05"

const (
	insertUserSQL = `INSERT INTO users (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, email, name, password_hash, created_at FROM users`

	selectUserByIDSQL    = selectUserSQL + ` WHERE id = ?`
	selectUserByEmailSQL = selectUserSQL + ` WHERE email = ?`
	listUsersSQL         = selectUserSQL + ` ORDER BY created_at DESC`

	updateUserSQL = `UPDATE users SET email = ?, name = ?, password_hash = ? WHERE id = ?`
	deleteUserSQL = `DELETE FROM users WHERE id = ?`
)

// isUniqueViolation matches SQLite's UNIQUE constraint error on users.email.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nullableStr maps "" to NULL for optional text columns.
func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Create inserts a new user.
func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID,
		u.Email,
		nullableStr(u.Name),
		u.PasswordHash,
		u.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u    models.User
		name sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Name = name.String
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by id %q: %w", id, err)
	}
	return u, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by email %q: %w", email, err)
	}
	return u, nil
}

// List returns all users, newest first.
func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var (
			u    models.User
			name sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		u.Name = name.String
		u.CreatedAt = u.CreatedAt.UTC()
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// Update rewrites email, name and password hash of an existing user.
func (r *UserSQLite) Update(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, updateUserSQL,
		u.Email,
		nullableStr(u.Name),
		u.PasswordHash,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("update user %q: %w", u.ID, err)
	}
	return nil
}

// Delete removes a user; owned todos go with it via ON DELETE CASCADE.
// Reports whether a row was actually deleted.
func (r *UserSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete user %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for user %q: %w", id, err)
	}
	return n > 0, nil
}
