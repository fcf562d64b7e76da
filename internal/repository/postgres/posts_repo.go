package postgres

import (
	"context"

	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postsRepo struct{ pool *pgxpool.Pool }

func (r *postsRepo) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.author_id, u.username, p.title, p.body, p.created
		   FROM posts p JOIN users u ON p.author_id = u.id
		  ORDER BY p.created DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Author, &p.Title, &p.Body, &p.Created); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) GetByID(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	err := r.pool.QueryRow(ctx,
		`SELECT p.id, p.author_id, u.username, p.title, p.body, p.created
		   FROM posts p JOIN users u ON p.author_id = u.id
		  WHERE p.id=$1`, id,
	).Scan(&p.ID, &p.AuthorID, &p.Author, &p.Title, &p.Body, &p.Created)
	return p, mapErr(err)
}

func (r *postsRepo) Create(ctx context.Context, authorID int64, title, body string) (models.Post, error) {
	var p models.Post
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts(author_id, title, body) VALUES($1,$2,$3)
		 RETURNING id, author_id, title, body, created`,
		authorID, title, body,
	).Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.Created)
	return p, mapErr(err)
}

func (r *postsRepo) Update(ctx context.Context, id int64, title, body string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts SET title=$2, body=$3 WHERE id=$1`, id, title, body)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *postsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
