package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todoapi/internal/models"
	"todoapi/internal/repository"
	"todoapi/internal/token"
)

const bearerTokenType = "Bearer"

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	users  repository.Users
	tokens *token.Service
}

func NewAuthService(users repository.Users, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register hashes the password and creates a new user, returning its id.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (string, error) {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
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
			return "", ErrEmailTaken
		}
		return "", err
	}
	return u.ID, nil
}

// Login validates credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if u == nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !verifyPassword(u.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{
		AccessToken: signed,
		TokenType:   bearerTokenType,
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		User:        *u,
	}, nil
}

// Profile loads the user behind a verified subject. Tokens are stateless, so
// a deleted user's token still verifies — this is where it turns into 404.
func (s *AuthService) Profile(ctx context.Context, userID string) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash; malformed digests report false rather
// than an error.
func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
