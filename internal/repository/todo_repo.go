package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todoapi/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite {
	return &TodoSQLite{db: db}
}

var _ Todos = (*TodoSQLite)(nil)

const (
	insertTodoSQL = `INSERT INTO todos (id, owner_id, title, description, completed, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectTodoSQL = `SELECT id, owner_id, title, description, completed, due_date, created_at, updated_at FROM todos`

	selectTodoByIDSQL = selectTodoSQL + ` WHERE id = ?`

	updateTodoSQL = `UPDATE todos SET title = ?, description = ?, completed = ?, due_date = ?, updated_at = ? WHERE id = ?`
	deleteTodoSQL = `DELETE FROM todos WHERE id = ?`
)

// formatDue maps a nil due date to NULL.
func formatDue(t *sql.NullTime) any {
	if t == nil || !t.Valid {
		return nil
	}
	return t.Time.UTC().Format(timeLayout)
}

func dueOf(t models.Todo) *sql.NullTime {
	if t.DueDate == nil {
		return nil
	}
	return &sql.NullTime{Time: *t.DueDate, Valid: true}
}

// Create inserts a new todo.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) error {
	_, err := r.db.ExecContext(ctx, insertTodoSQL,
		t.ID,
		t.OwnerID,
		t.Title,
		nullableStr(t.Description),
		t.Completed,
		formatDue(dueOf(t)),
		t.CreatedAt.UTC().Format(timeLayout),
		t.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert todo %q: %w", t.ID, err)
	}
	return nil
}

func scanTodo(scan func(...any) error) (*models.Todo, error) {
	var (
		t    models.Todo
		desc sql.NullString
		due  sql.NullTime
	)
	if err := scan(&t.ID, &t.OwnerID, &t.Title, &desc, &t.Completed, &due, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Description = desc.String
	if due.Valid {
		d := due.Time.UTC()
		t.DueDate = &d
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// GetByID fetches a todo by id. Returns (nil, nil) if not found.
func (r *TodoSQLite) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx, selectTodoByIDSQL, id)
	t, err := scanTodo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select todo %q: %w", id, err)
	}
	return t, nil
}

// ListByOwner returns one page of the owner's todos, newest first, and the
// total number of matches.
func (r *TodoSQLite) ListByOwner(ctx context.Context, ownerID string, f TodoFilter) ([]models.Todo, int, error) {
	where := " WHERE owner_id = ?"
	args := []any{ownerID}
	if f.Completed != nil {
		where += " AND completed = ?"
		args = append(args, *f.Completed)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count todos for owner %q: %w", ownerID, err)
	}

	q := selectTodoSQL + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list todos for owner %q: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, f.Limit)
	for rows.Next() {
		t, err := scanTodo(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan todo row: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate todos: %w", err)
	}
	return out, total, nil
}

// Update rewrites the mutable fields of an existing todo. OwnerID and
// CreatedAt are deliberately not part of the statement.
func (r *TodoSQLite) Update(ctx context.Context, t models.Todo) error {
	_, err := r.db.ExecContext(ctx, updateTodoSQL,
		t.Title,
		nullableStr(t.Description),
		t.Completed,
		formatDue(dueOf(t)),
		t.UpdatedAt.UTC().Format(timeLayout),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update todo %q: %w", t.ID, err)
	}
	return nil
}

// Delete removes a todo and reports whether a row was actually deleted.
func (r *TodoSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTodoSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete todo %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	return n > 0, nil
}
