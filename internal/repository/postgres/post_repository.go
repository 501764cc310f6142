package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gfdmit/board-service/internal/repository"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *repository.Post) error {
	query := `INSERT INTO posts (board_id, title, content, created_at, updated_at)
	 VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return r.db.QueryRowContext(
		ctx, query, post.BoardID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*repository.Post, error) {
	query := `SELECT id, board_id, title, content, created_at, updated_at, deleted_at
	 FROM posts WHERE id = $1 AND deleted_at IS NULL`

	post := &repository.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.BoardID, &post.Title, &post.Content,
		&post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context, boardID *int64) ([]repository.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if boardID != nil {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, board_id, title, content, created_at, updated_at, deleted_at
			 FROM posts WHERE deleted_at IS NULL AND board_id = $1 ORDER BY id`, *boardID)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, board_id, title, content, created_at, updated_at, deleted_at
			 FROM posts WHERE deleted_at IS NULL ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []repository.Post{}
	for rows.Next() {
		post := repository.Post{}
		if err := rows.Scan(
			&post.ID, &post.BoardID, &post.Title, &post.Content,
			&post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, id int64, upd repository.PostUpdate, now time.Time) (*repository.Post, error) {
	query := `UPDATE posts
	 SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = $3
	 WHERE id = $4 AND deleted_at IS NULL
	 RETURNING id, board_id, title, content, created_at, updated_at, deleted_at`

	post := &repository.Post{}
	err := r.db.QueryRowContext(ctx, query, upd.Title, upd.Content, now, id).Scan(
		&post.ID, &post.BoardID, &post.Title, &post.Content,
		&post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	query := `UPDATE posts SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, now, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrPostNotFound
	}
	return nil
}
