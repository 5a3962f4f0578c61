// Package db wires the storage backends behind a single RepositoryManager
// so the rest of the server does not care whether it talks to Postgres or
// to the in-memory stores used in tests.
package db

import (
	"context"
	"database/sql"

	"github.com/dpavlenko/bloglist/internal/server/blogs"
	"github.com/dpavlenko/bloglist/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Blogs() blogs.Repository
}
