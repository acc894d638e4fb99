package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "studycompass/database/repository/user"
	"studycompass/models"
	"studycompass/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed login. The message never
// distinguishes a wrong password from an unknown email.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResult is a signed-in user plus their session token.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService handles registration and authentication.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

const tokenDuration = 7 * 24 * time.Hour

// Register creates a new user and issues a session token.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: *u, Token: token}, nil
}

// Login verifies credentials and issues a session token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: *u, Token: token}, nil
}

// GetByID fetches a user by ID.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}
