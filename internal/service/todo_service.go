package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TodoService enforces the ownership policy around the todos repository:
// load, then authorize, and only then write.
type TodoService struct {
	todos repository.Todos
}

func NewTodoService(todos repository.Todos) *TodoService {
	return &TodoService{todos: todos}
}

// Create stores a new todo owned by the caller. The owner always comes from
// the verified subject, never from the request body.
func (s *TodoService) Create(ctx context.Context, ownerID string, p TodoCreateParams) (models.Todo, error) {
	now := time.Now().UTC()
	t := models.Todo{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.todos.Create(ctx, t); err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

// authorize loads a todo and checks it belongs to the caller: absent rows are
// ErrNotFound, someone else's rows are ErrForbidden.
func (s *TodoService) authorize(ctx context.Context, callerID, id string) (*models.Todo, error) {
	t, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	if t.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, callerID, id string) (models.Todo, error) {
	t, err := s.authorize(ctx, callerID, id)
	if err != nil {
		return models.Todo{}, err
	}
	return *t, nil
}

// List returns one page of the caller's todos, newest first. Page and limit
// are normalized here so the repository sees only sane values.
func (s *TodoService) List(ctx context.Context, callerID string, p TodoListParams) (models.TodoPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}

	items, total, err := s.todos.ListByOwner(ctx, callerID, repository.TodoFilter{
		Completed: p.Completed,
		Page:      p.Page,
		Limit:     p.Limit,
	})
	if err != nil {
		return models.TodoPage{}, err
	}
	return models.TodoPage{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// Update applies the provided fields to an owned todo. Ownership is checked
// strictly before the write so a non-owner request can never mutate the row.
func (s *TodoService) Update(ctx context.Context, callerID, id string, p TodoUpdateParams) (models.Todo, error) {
	t, err := s.authorize(ctx, callerID, id)
	if err != nil {
		return models.Todo{}, err
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.todos.Update(ctx, *t); err != nil {
		return models.Todo{}, err
	}
	return *t, nil
}

// Delete removes an owned todo. A repeat delete reports ErrNotFound.
func (s *TodoService) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.authorize(ctx, callerID, id); err != nil {
		return err
	}
	ok, err := s.todos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
