package users

import (
	"context"
	"sync"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without a database. BlogsForUser is wired by the
// repository manager so user listings can include the derived blog list.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*User
	order []string

	BlogsForUser func(ctx context.Context, userID string) ([]BlogRef, error)
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Username == user.Username {
			return nil, common.ErrAlreadyExists
		}
	}

	stored := *user
	stored.ID = uuid.NewString()
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	result := *u
	return &result, nil
}

func (r *InMemoryRepository) ListWithBlogs(ctx context.Context) ([]*PublicUser, error) {
	r.mu.RLock()
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	r.mu.RUnlock()

	result := make([]*PublicUser, 0, len(ids))
	for _, id := range ids {
		u, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}

		pu := &PublicUser{ID: u.ID, Username: u.Username, Name: u.Name, Blogs: []BlogRef{}}
		if r.BlogsForUser != nil {
			refs, err := r.BlogsForUser(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			pu.Blogs = refs
		}
		result = append(result, pu)
	}

	return result, nil
}
