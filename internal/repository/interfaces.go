package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/blog-backend/internal/models"
)

var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate")
)

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type Posts interface {
	// List returns every post with its author username, newest first.
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, authorID int64, title, body string) (models.Post, error)
	Update(ctx context.Context, id int64, title, body string) error
	Delete(ctx context.Context, id int64) error
}
