package postgres

import (
	"context"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Create(ctx context.Context, username, passwordHash string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(username, password_hash) VALUES($1,$2)
		 RETURNING id, username, password_hash, created`,
		username, passwordHash,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Created)
	return u, mapErr(err)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Created)
	return u, mapErr(err)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created FROM users WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Created)
	return u, mapErr(err)
}
