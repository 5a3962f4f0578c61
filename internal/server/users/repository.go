package users

import (
	"context"
)

type Repository interface {
	// Create persists a new user and returns it with its assigned id.
	// A taken username fails with common.ErrAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// ListWithBlogs returns all users as public projections with their
	// blogs attached.
	ListWithBlogs(ctx context.Context) ([]*PublicUser, error)
}
