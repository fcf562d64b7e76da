// Package repotest provides in-memory implementations of the repository
// interfaces for tests. They mirror the SQL behavior the postgres
// implementations rely on: generated ids, the username unique constraint,
// and newest-first post ordering.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type Users struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.User
}

func NewUsers() *Users {
	return &Users{byID: map[int64]models.User{}}
}

func (f *Users) Create(_ context.Context, username, passwordHash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username {
			return models.User{}, repo.ErrDuplicate
		}
	}
	f.nextID++
	u := models.User{ID: f.nextID, Username: username, PasswordHash: passwordHash, Created: time.Now()}
	f.byID[u.ID] = u
	return u, nil
}

func (f *Users) GetByID(_ context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *Users) GetByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

// Count reports the number of stored users, for row-count assertions.
func (f *Users) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// Delete removes a user directly, bypassing the interface. Used to
// simulate a stale session whose user no longer exists.
func (f *Users) Delete(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
}

type Posts struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.Post
	users  *Users
}

// NewPosts ties the fake to a Users fake so List/GetByID can fill in the
// author username the way the SQL join does.
func NewPosts(users *Users) *Posts {
	return &Posts{byID: map[int64]models.Post{}, users: users}
}

func (f *Posts) List(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Post, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, f.withAuthor(ctx, p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.After(out[j].Created)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *Posts) GetByID(ctx context.Context, id int64) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return models.Post{}, repo.ErrNotFound
	}
	return f.withAuthor(ctx, p), nil
}

func (f *Posts) Create(_ context.Context, authorID int64, title, body string) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := models.Post{ID: f.nextID, AuthorID: authorID, Title: title, Body: body, Created: time.Now()}
	f.byID[p.ID] = p
	return p, nil
}

func (f *Posts) Update(_ context.Context, id int64, title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return repo.ErrNotFound
	}
	p.Title, p.Body = title, body
	f.byID[id] = p
	return nil
}

func (f *Posts) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// Count reports the number of stored posts.
func (f *Posts) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// SetCreated backdates a post, for ordering tests.
func (f *Posts) SetCreated(id int64, t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		p.Created = t
		f.byID[id] = p
	}
}

func (f *Posts) withAuthor(ctx context.Context, p models.Post) models.Post {
	if f.users != nil {
		if u, err := f.users.GetByID(ctx, p.AuthorID); err == nil {
			p.Author = u.Username
		}
	}
	return p
}
