package db

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// InitSchema drops and recreates the users and posts tables. Destructive:
// all existing data is lost. Intended for first-time setup and tests only,
// exposed as the init-db subcommand.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
