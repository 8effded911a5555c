package service

import (
	"context"
	"time"

	"todoapi/internal/models"
	"todoapi/internal/repository"
	"todoapi/internal/token"
)

type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// LoginResult is everything a successful login hands back to the client.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
	User        models.User
}

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (string, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	// Profile resolves the verified token subject to a stored user.
	Profile(ctx context.Context, userID string) (models.User, error)
}

type TodoCreateParams struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// TodoUpdateParams applies only the fields that are present; nil leaves the
// stored value untouched.
type TodoUpdateParams struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
}

type TodoListParams struct {
	Completed *bool
	Page      int
	Limit     int
}

// Todos exposes per-user todo CRUD. Every operation takes the caller's
// verified subject and enforces ownership before touching storage.
type Todos interface {
	Create(ctx context.Context, ownerID string, p TodoCreateParams) (models.Todo, error)
	Get(ctx context.Context, callerID, id string) (models.Todo, error)
	List(ctx context.Context, callerID string, p TodoListParams) (models.TodoPage, error)
	Update(ctx context.Context, callerID, id string, p TodoUpdateParams) (models.Todo, error)
	Delete(ctx context.Context, callerID, id string) error
}

type UserUpdateParams struct {
	Email    *string
	Name     *string
	Password *string
}

// Users exposes user management. A caller may read/update/delete only their
// own account; listing and creating are open to any authenticated caller.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, p RegisterParams) (models.User, error)
	Get(ctx context.Context, callerID, id string) (models.User, error)
	Update(ctx context.Context, callerID, id string, p UserUpdateParams) (models.User, error)
	Delete(ctx context.Context, callerID, id string) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Todos
	Users
}

// NewService wires the repository layer into concrete services. The token
// service carries the process-wide signing secret loaded at startup.
func NewService(repos *repository.Repository, tokens *token.Service) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Todos:         NewTodoService(repos.Todos),
		Users:         NewUserService(repos.Users),
	}
}
