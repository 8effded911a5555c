package repository

import (
	"context"
	"database/sql"
	"errors"

	"todoapi/internal/models"
)

// Storage-level sentinel errors surfaced to the service layer.
var (
	// ErrDuplicateEmail maps the UNIQUE(email) constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TodoFilter narrows and pages a todo listing. Page/Limit are assumed
// normalized by the service layer.
type TodoFilter struct {
	Completed *bool // nil means no completion filter
	Page      int
	Limit     int
}

type Todos interface {
	Create(ctx context.Context, t models.Todo) error
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	// ListByOwner returns one page of the owner's todos, newest first,
	// plus the total match count across all pages.
	ListByOwner(ctx context.Context, ownerID string, f TodoFilter) ([]models.Todo, int, error)
	Update(ctx context.Context, t models.Todo) error
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	Users Users
	Todos Todos
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
		Todos: NewTodoSQLite(db),
	}
}
