package repository

import (
	"context"
	"errors"
	"time"
)

var (
	ErrBoardNotFound = errors.New("repository: board not found")
	ErrPostNotFound  = errors.New("repository: post not found")
)

// BoardRepository owns the board record set. Reads only ever see active
// records (deleted_at unset): a soft-deleted id behaves like a missing one
// and surfaces ErrBoardNotFound. Create assigns the next sequential id,
// starting at 1; ids are never reused. List returns records in insertion
// order. Update applies only non-nil fields of upd and always persists
// updated_at = now; SoftDelete stamps deleted_at on the active record.
type BoardRepository interface {
	Create(ctx context.Context, board *Board) error
	GetByID(ctx context.Context, id int64) (*Board, error)
	List(ctx context.Context) ([]Board, error)
	Update(ctx context.Context, id int64, upd BoardUpdate, now time.Time) (*Board, error)
	SoftDelete(ctx context.Context, id int64, now time.Time) error
}

// PostRepository mirrors the board contract for posts. List filters by board
// when boardID is non-nil and returns all active posts otherwise.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context, boardID *int64) ([]Post, error)
	Update(ctx context.Context, id int64, upd PostUpdate, now time.Time) (*Post, error)
	SoftDelete(ctx context.Context, id int64, now time.Time) error
}
