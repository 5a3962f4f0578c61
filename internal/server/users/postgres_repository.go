package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (username, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Name, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query :=
		`SELECT id, username, name, password_hash, created_at FROM users
		 WHERE username = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query :=
		`SELECT id, username, name, password_hash, created_at FROM users
		 WHERE id = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) ListWithBlogs(ctx context.Context) ([]*PublicUser, error) {
	query :=
		`SELECT u.id, u.username, u.name, b.id, b.title, b.url, b.likes
		 FROM users u
		 LEFT JOIN blogs b ON b.user_id = u.id
		 ORDER BY u.created_at, b.created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := make([]*PublicUser, 0)
	byID := make(map[string]*PublicUser)

	for rows.Next() {
		var (
			id, username, name     string
			blogID, title, blogURL sql.NullString
			likes                  sql.NullInt64
		)
		if err := rows.Scan(&id, &username, &name, &blogID, &title, &blogURL, &likes); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}

		u, ok := byID[id]
		if !ok {
			u = &PublicUser{ID: id, Username: username, Name: name, Blogs: []BlogRef{}}
			byID[id] = u
			result = append(result, u)
		}

		if blogID.Valid {
			u.Blogs = append(u.Blogs, BlogRef{
				ID:    blogID.String,
				Title: title.String,
				URL:   blogURL.String,
				Likes: int(likes.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}
