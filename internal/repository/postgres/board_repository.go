package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gfdmit/board-service/internal/repository"
)

// BoardRepository runs the board store against a database/sql pool.
// Timestamps are passed in from the caller rather than taken server-side, so
// the statements run unchanged under the sqlite-backed tests.
type BoardRepository struct {
	db *sql.DB
}

func NewBoardRepository(db *sql.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *repository.Board) error {
	query := `INSERT INTO boards (title, description, created_at, updated_at)
	 VALUES ($1, $2, $3, $4) RETURNING id`

	return r.db.QueryRowContext(
		ctx, query, board.Title, board.Description, board.CreatedAt, board.UpdatedAt,
	).Scan(&board.ID)
}

func (r *BoardRepository) GetByID(ctx context.Context, id int64) (*repository.Board, error) {
	query := `SELECT id, title, description, created_at, updated_at, deleted_at
	 FROM boards WHERE id = $1 AND deleted_at IS NULL`

	board := &repository.Board{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&board.ID, &board.Title, &board.Description,
		&board.CreatedAt, &board.UpdatedAt, &board.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (r *BoardRepository) List(ctx context.Context) ([]repository.Board, error) {
	query := `SELECT id, title, description, created_at, updated_at, deleted_at
	 FROM boards WHERE deleted_at IS NULL ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := []repository.Board{}
	for rows.Next() {
		board := repository.Board{}
		if err := rows.Scan(
			&board.ID, &board.Title, &board.Description,
			&board.CreatedAt, &board.UpdatedAt, &board.DeletedAt,
		); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

func (r *BoardRepository) Update(ctx context.Context, id int64, upd repository.BoardUpdate, now time.Time) (*repository.Board, error) {
	// COALESCE keeps the stored value for fields the caller left nil; the
	// whole partial update is a single statement against the active row.
	query := `UPDATE boards
	 SET title = COALESCE($1, title), description = COALESCE($2, description), updated_at = $3
	 WHERE id = $4 AND deleted_at IS NULL
	 RETURNING id, title, description, created_at, updated_at, deleted_at`

	board := &repository.Board{}
	err := r.db.QueryRowContext(ctx, query, upd.Title, upd.Description, now, id).Scan(
		&board.ID, &board.Title, &board.Description,
		&board.CreatedAt, &board.UpdatedAt, &board.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (r *BoardRepository) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	query := `UPDATE boards SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, now, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrBoardNotFound
	}
	return nil
}
