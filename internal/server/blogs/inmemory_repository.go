package blogs

import (
	"context"
	"sync"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without a database. OwnerByID is wired by the
// repository manager so listings can carry the owner projection.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Blog
	order []string

	OwnerByID func(ctx context.Context, userID string) (*Owner, error)
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*Blog)}
}

func (r *InMemoryRepository) Create(ctx context.Context, blog *Blog) (*Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *blog
	stored.ID = uuid.NewString()
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Blog, error) {
	r.mu.RLock()
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	r.mu.RUnlock()

	result := make([]*Blog, 0, len(ids))
	for _, id := range ids {
		blog, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}
		if r.OwnerByID != nil {
			owner, err := r.OwnerByID(ctx, blog.UserID)
			if err != nil {
				return nil, err
			}
			blog.Owner = owner
		}
		result = append(result, blog)
	}

	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	result := *blog
	return &result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, blog *Blog) (*Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[blog.ID]
	if !ok {
		return nil, common.ErrNotFound
	}

	stored.Title = blog.Title
	stored.URL = blog.URL
	stored.Author = blog.Author
	stored.Likes = blog.Likes

	result := *stored
	return &result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)

	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// ListByUser returns the blogs owned by userID in creation order.
func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Blog, 0)
	for _, id := range r.order {
		blog := r.byID[id]
		if blog.UserID == userID {
			copied := *blog
			result = append(result, &copied)
		}
	}

	return result, nil
}
