// Package blogs implements the blog-entry lifecycle: creation, listing,
// full-field updates and deletion, with mutations restricted to the
// entry's owner.
package blogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/google/uuid"
)

// Input carries the caller-supplied fields of a blog for create and
// update. Likes is a pointer so an absent value is distinguishable from
// an explicit zero; absent defaults to 0.
type Input struct {
	Title  string
	URL    string
	Author string
	Likes  *int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(in Input) (int, error) {
	if in.Title == "" || in.URL == "" {
		return 0, fmt.Errorf("%w: title and url are required", common.ErrValidation)
	}

	likes := 0
	if in.Likes != nil {
		if *in.Likes < 0 {
			return 0, fmt.Errorf("%w: likes must not be negative", common.ErrValidation)
		}
		likes = *in.Likes
	}

	return likes, nil
}

// Create persists a new blog owned by userID and returns it with its
// assigned id. The owner's blog list is derived by query, so a single
// insert is the whole write.
func (s *Service) Create(ctx context.Context, userID string, in Input) (*Blog, error) {

	likes, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	blog := &Blog{
		Title:  in.Title,
		URL:    in.URL,
		Author: in.Author,
		Likes:  likes,
		UserID: userID,
	}

	blog, err = s.repo.Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("error creating blog: %v", err)
	}

	return blog, nil
}

// List returns all blogs with owner projections. No identity required.
func (s *Service) List(ctx context.Context) ([]*Blog, error) {
	return s.repo.List(ctx)
}

// Get returns the blog with the given id, or (nil, nil) when a
// well-formed id has no record behind it. A structurally invalid id
// fails with common.ErrMalformedID.
func (s *Service) Get(ctx context.Context, id string) (*Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrMalformedID, id)
	}

	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return blog, nil
}

// Update replaces the mutable fields of the blog. Fails with
// common.ErrMalformedID, common.ErrNotFound or common.ErrNotOwner
// before any write happens.
func (s *Service) Update(ctx context.Context, id, userID string, in Input) (*Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrMalformedID, id)
	}

	likes, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeMutation(blog, userID); err != nil {
		return nil, err
	}

	blog.Title = in.Title
	blog.URL = in.URL
	blog.Author = in.Author
	blog.Likes = likes

	return s.repo.Update(ctx, blog)
}

// Delete removes the blog. Same preconditions as Update; deleting an id
// that no longer resolves fails with common.ErrNotFound, including a
// repeated delete of the same id.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", common.ErrMalformedID, id)
	}

	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := AuthorizeMutation(blog, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, blog.ID)
}
