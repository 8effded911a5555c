package service

import (
	"context"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	CreateFn     func(u models.User) error
	GetByIDFn    func(id string) (*models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	ListFn       func() ([]models.User, error)
	UpdateFn     func(u models.User) error
	DeleteFn     func(id string) (bool, error)

	createCalls []models.User
	updateCalls []models.User
	deleteCalls []string
}

func (m *mockUsersRepo) Create(_ context.Context, u models.User) error {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}

func (m *mockUsersRepo) List(_ context.Context) ([]models.User, error) {
	return m.ListFn()
}

func (m *mockUsersRepo) Update(_ context.Context, u models.User) error {
	m.updateCalls = append(m.updateCalls, u)
	return m.UpdateFn(u)
}

func (m *mockUsersRepo) Delete(_ context.Context, id string) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// mockTodosRepo is a lightweight in-test mock for repository.Todos.
type mockTodosRepo struct {
	CreateFn      func(t models.Todo) error
	GetByIDFn     func(id string) (*models.Todo, error)
	ListByOwnerFn func(ownerID string, f repository.TodoFilter) ([]models.Todo, int, error)
	UpdateFn      func(t models.Todo) error
	DeleteFn      func(id string) (bool, error)

	createCalls []models.Todo
	updateCalls []models.Todo
	deleteCalls []string
	listCalls   []repository.TodoFilter
}

func (m *mockTodosRepo) Create(_ context.Context, t models.Todo) error {
	m.createCalls = append(m.createCalls, t)
	return m.CreateFn(t)
}

func (m *mockTodosRepo) GetByID(_ context.Context, id string) (*models.Todo, error) {
	return m.GetByIDFn(id)
}

func (m *mockTodosRepo) ListByOwner(_ context.Context, ownerID string, f repository.TodoFilter) ([]models.Todo, int, error) {
	m.listCalls = append(m.listCalls, f)
	return m.ListByOwnerFn(ownerID, f)
}

func (m *mockTodosRepo) Update(_ context.Context, t models.Todo) error {
	m.updateCalls = append(m.updateCalls, t)
	return m.UpdateFn(t)
}

func (m *mockTodosRepo) Delete(_ context.Context, id string) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}
