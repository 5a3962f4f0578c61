package db

import (
	"context"
	"database/sql"

	"github.com/dpavlenko/bloglist/internal/server/blogs"
	"github.com/dpavlenko/bloglist/internal/server/users"
)

type InMemoryRepositoryManager struct {
	users users.Repository
	blogs blogs.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Blogs() blogs.Repository {
	return m.blogs
}

// NewInMemoryRepositoryManager builds map-backed repositories and wires
// the cross-repo projections that Postgres resolves with joins: blog
// listings get their owner projection from the users store, user
// listings derive their blog list from the blogs store.
func NewInMemoryRepositoryManager() RepositoryManager {
	userRepo := users.NewInMemoryRepository()
	blogRepo := blogs.NewInMemoryRepository()

	blogRepo.OwnerByID = func(ctx context.Context, userID string) (*blogs.Owner, error) {
		u, err := userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &blogs.Owner{ID: u.ID, Username: u.Username, Name: u.Name}, nil
	}

	userRepo.BlogsForUser = func(ctx context.Context, userID string) ([]users.BlogRef, error) {
		owned, err := blogRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		refs := make([]users.BlogRef, 0, len(owned))
		for _, b := range owned {
			refs = append(refs, users.BlogRef{ID: b.ID, Title: b.Title, URL: b.URL, Likes: b.Likes})
		}
		return refs, nil
	}

	return &InMemoryRepositoryManager{users: userRepo, blogs: blogRepo}
}
