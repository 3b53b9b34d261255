package services

import (
	"context"
	"errors"

	"github.com/inkwell-blog/inkwell/internal/store"
	"github.com/inkwell-blog/inkwell/types"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService encapsulates registration, login, and identity lookup.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register validates the input, hashes the password, and inserts the user.
// It does not establish a session; registration and login are decoupled.
func (s *UserService) Register(ctx context.Context, username, password string) (types.User, error) {
	var verr *ValidationError
	if username == "" {
		verr = &ValidationError{Message: "Username is required."}
	}
	if password == "" {
		verr = &ValidationError{Message: "Password is required."}
	}
	if verr != nil {
		return types.User{}, verr
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	user, err := s.repo.Create(ctx, types.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return types.User{}, &ConflictError{
				Message: "User " + username + " is already registered.",
			}
		}
		return types.User{}, err
	}

	return user, nil
}

// Login looks up the user by exact username and verifies the password
// against the stored hash.
func (s *UserService) Login(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, &AuthError{Message: "Incorrect username."}
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, &AuthError{Message: "Incorrect password."}
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}
