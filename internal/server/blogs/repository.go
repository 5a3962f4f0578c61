package blogs

import (
	"context"
)

type Repository interface {
	// Create persists a new blog and returns it with its assigned id.
	Create(ctx context.Context, blog *Blog) (*Blog, error)
	// List returns all blogs in creation order with Owner populated.
	List(ctx context.Context) ([]*Blog, error)
	GetByID(ctx context.Context, id string) (*Blog, error)
	// Update replaces the mutable fields of an existing blog.
	Update(ctx context.Context, blog *Blog) (*Blog, error)
	// Delete removes a blog; a missing row fails with common.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
