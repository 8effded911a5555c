package handlers

import (
	"context"

	"todoapi/internal/models"
	"todoapi/internal/service"
)

// ---- Service mocks ----

type mockAuth struct {
	registerID  string
	registerErr error
	loginRes    service.LoginResult
	loginErr    error
	profileUser models.User
	profileErr  error

	lastRegister service.RegisterParams
	lastLogin    [2]string
	lastProfile  string
}

func (m *mockAuth) Register(_ context.Context, p service.RegisterParams) (string, error) {
	m.lastRegister = p
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (service.LoginResult, error) {
	m.lastLogin = [2]string{email, password}
	return m.loginRes, m.loginErr
}

func (m *mockAuth) Profile(_ context.Context, userID string) (models.User, error) {
	m.lastProfile = userID
	return m.profileUser, m.profileErr
}

type mockTodos struct {
	createRes models.Todo
	createErr error
	getRes    models.Todo
	getErr    error
	listRes   models.TodoPage
	listErr   error
	updateRes models.Todo
	updateErr error
	deleteErr error

	lastCreateOwner  string
	lastCreateParams service.TodoCreateParams
	lastListCaller   string
	lastListParams   service.TodoListParams
	lastCaller       string
	lastID           string
	updateCalls      int
	deleteCalls      int
}

func (m *mockTodos) Create(_ context.Context, ownerID string, p service.TodoCreateParams) (models.Todo, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateParams = p
	return m.createRes, m.createErr
}

func (m *mockTodos) Get(_ context.Context, callerID, id string) (models.Todo, error) {
	m.lastCaller, m.lastID = callerID, id
	return m.getRes, m.getErr
}

func (m *mockTodos) List(_ context.Context, callerID string, p service.TodoListParams) (models.TodoPage, error) {
	m.lastListCaller = callerID
	m.lastListParams = p
	return m.listRes, m.listErr
}

func (m *mockTodos) Update(_ context.Context, callerID, id string, _ service.TodoUpdateParams) (models.Todo, error) {
	m.lastCaller, m.lastID = callerID, id
	m.updateCalls++
	return m.updateRes, m.updateErr
}

func (m *mockTodos) Delete(_ context.Context, callerID, id string) error {
	m.lastCaller, m.lastID = callerID, id
	m.deleteCalls++
	return m.deleteErr
}

type mockUsers struct {
	listRes   []models.User
	listErr   error
	createRes models.User
	createErr error
	getRes    models.User
	getErr    error
	updateRes models.User
	updateErr error
	deleteErr error

	lastCaller string
	lastID     string
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	return m.listRes, m.listErr
}

func (m *mockUsers) Create(_ context.Context, _ service.RegisterParams) (models.User, error) {
	return m.createRes, m.createErr
}

func (m *mockUsers) Get(_ context.Context, callerID, id string) (models.User, error) {
	m.lastCaller, m.lastID = callerID, id
	return m.getRes, m.getErr
}

func (m *mockUsers) Update(_ context.Context, callerID, id string, _ service.UserUpdateParams) (models.User, error) {
	m.lastCaller, m.lastID = callerID, id
	return m.updateRes, m.updateErr
}

func (m *mockUsers) Delete(_ context.Context, callerID, id string) error {
	m.lastCaller, m.lastID = callerID, id
	return m.deleteErr
}
