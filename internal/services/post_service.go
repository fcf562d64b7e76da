package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type PostService struct {
	r repo.Posts
}

func NewPostService(r repo.Posts) *PostService { return &PostService{r: r} }

// List returns every post with its author username, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.r.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	p, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	return p, err
}

func (s *PostService) Create(ctx context.Context, user models.User, title, body string) (models.Post, error) {
	p := models.Post{AuthorID: user.ID, Title: title, Body: body}
	if err := p.Validate(); err != nil {
		return models.Post{}, err
	}
	created, err := s.r.Create(ctx, user.ID, title, body)
	if err == nil {
		metrics.PostsCreated.Inc()
	}
	return created, err
}

// Update overwrites title and body. Existence is checked before ownership
// so a nonexistent id is a 404 regardless of who asks; ownership before
// validation so a non-owner learns nothing about form handling.
func (s *PostService) Update(ctx context.Context, user models.User, id int64, title, body string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != user.ID {
		return ErrNotOwner
	}
	existing.Title, existing.Body = title, body
	if err := existing.Validate(); err != nil {
		return err
	}
	return s.r.Update(ctx, id, title, body)
}

// Delete removes the post permanently, same checks as Update.
func (s *PostService) Delete(ctx context.Context, user models.User, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != user.ID {
		return ErrNotOwner
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	metrics.PostsDeleted.Inc()
	return nil
}
