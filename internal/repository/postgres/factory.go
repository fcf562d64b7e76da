package postgres

import (
	repo "github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users repo.Users
	Posts repo.Posts
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users: &usersRepo{pool},
		Posts: &postsRepo{pool},
	}
}
