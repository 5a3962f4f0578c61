package blogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpavlenko/bloglist/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, blog *Blog) (*Blog, error) {

	query :=
		`INSERT INTO blogs (title, url, author, likes, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		blog.Title, blog.URL, blog.Author, blog.Likes, blog.UserID).
		Scan(&blog.ID, &blog.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return blog, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Blog, error) {
	query :=
		`SELECT b.id, b.title, b.url, b.author, b.likes, b.user_id, b.created_at,
		        u.id, u.username, u.name
		 FROM blogs b
		 JOIN users u ON u.id = b.user_id
		 ORDER BY b.created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := make([]*Blog, 0)
	for rows.Next() {
		blog := &Blog{Owner: &Owner{}}
		var author sql.NullString
		err := rows.Scan(&blog.ID, &blog.Title, &blog.URL, &author, &blog.Likes, &blog.UserID, &blog.CreatedAt,
			&blog.Owner.ID, &blog.Owner.Username, &blog.Owner.Name)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		blog.Author = author.String
		result = append(result, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Blog, error) {
	query :=
		`SELECT id, title, url, author, likes, user_id, created_at FROM blogs
		 WHERE id = $1
		 `

	blog := &Blog{}
	var author sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&blog.ID, &blog.Title, &blog.URL, &author, &blog.Likes, &blog.UserID, &blog.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	blog.Author = author.String

	return blog, nil
}

func (r *PostgresRepository) Update(ctx context.Context, blog *Blog) (*Blog, error) {
	query :=
		`UPDATE blogs SET title = $1, url = $2, author = $3, likes = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		blog.Title, blog.URL, blog.Author, blog.Likes, blog.ID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error reading affected rows: %v", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	return blog, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM blogs WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %v", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// ListByUser returns the blogs owned by userID in creation order. Used to
// derive a user's blog list instead of persisting a redundant index.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Blog, error) {
	query :=
		`SELECT id, title, url, author, likes, user_id, created_at FROM blogs
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := make([]*Blog, 0)
	for rows.Next() {
		blog := &Blog{}
		var author sql.NullString
		err := rows.Scan(&blog.ID, &blog.Title, &blog.URL, &author, &blog.Likes, &blog.UserID, &blog.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		blog.Author = author.String
		result = append(result, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}
