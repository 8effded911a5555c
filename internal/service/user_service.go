package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

// UserService manages accounts. The only role in the system is
// "authenticated user acting on their own account", so every per-id
// operation compares the caller to the target id.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Create adds a user on behalf of an already authenticated caller
// (admin-style provisioning kept from the original API surface).
func (s *UserService) Create(ctx context.Context, p RegisterParams) (models.User, error) {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	u := models.User{
		ID:           uuid.NewString(),
		Email:        p.Email,
		Name:         p.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return u, nil
}

// authorize rejects any caller acting on an account other than their own.
func (s *UserService) authorize(callerID, id string) error {
	if callerID != id {
		return ErrForbidden
	}
	return nil
}

func (s *UserService) Get(ctx context.Context, callerID, id string) (models.User, error) {
	if err := s.authorize(callerID, id); err != nil {
		return models.User{}, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// Update changes email, name and/or password of the caller's own account.
// The ownership check runs before anything is loaded or written.
func (s *UserService) Update(ctx context.Context, callerID, id string, p UserUpdateParams) (models.User, error) {
	if err := s.authorize(callerID, id); err != nil {
		return models.User{}, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}

	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("invalid password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, *u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return *u, nil
}

// Delete removes the caller's own account; their todos cascade away at the
// storage layer.
func (s *UserService) Delete(ctx context.Context, callerID, id string) error {
	if err := s.authorize(callerID, id); err != nil {
		return err
	}
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
