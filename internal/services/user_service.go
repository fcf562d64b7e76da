package services

import (
	"context"
	"errors"
	"strings"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

// Register validates the credentials, hashes the password and stores the
// new user. It does not establish a session; the caller logs in afterwards.
func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if err := models.ValidateCredentials(username, password); err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.r.Create(ctx, username, hash)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.User{}, ErrUsernameTaken
	}
	return u, err
}

// Login returns the authenticated user. Unknown username and wrong password
// fail identically with ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.r.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repo.ErrNotFound) {
		metrics.LoginFailures.Inc()
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		metrics.LoginFailures.Inc()
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID loads a user, mapping a missing row to repo.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return s.r.GetByID(ctx, id)
}
