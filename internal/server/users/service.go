// Package users implements account registration, credential verification
// and identity lookup for the bloglist API.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/dpavlenko/bloglist/internal/server/auth"
	"github.com/dpavlenko/bloglist/internal/server/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 4
	minPasswordLen = 4
	defaultName    = "John Doe"
)

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates a new account. Username and password must both be
// present and at least 4 characters; a missing name defaults to "John Doe".
func (s *Service) Register(ctx context.Context, username, name, password string) (*User, error) {

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}
	if utf8.RuneCountInString(username) < minUsernameLen || utf8.RuneCountInString(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: username and password must be at least 4 characters long", common.ErrValidation)
	}
	if name == "" {
		name = defaultName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: username already taken", common.ErrValidation)
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// Login verifies the credentials and mints an identity token. Unknown
// username and wrong password produce the same generic error so callers
// cannot tell which part was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (string, *User, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user, nil
}

// GetByID resolves a user id (a token subject) to a live user record.
// A subject that is not a well-formed id cannot match any record.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List returns all users as public projections with their blogs.
func (s *Service) List(ctx context.Context) ([]*PublicUser, error) {
	return s.repo.ListWithBlogs(ctx)
}
