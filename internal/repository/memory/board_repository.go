package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gfdmit/board-service/internal/repository"
)

// BoardRepository keeps board records in process memory for the lifetime of
// the service. Records live in insertion order; ids count up from 1 and are
// never reused, soft-deleted entries stay in the slice.
type BoardRepository struct {
	mu     sync.RWMutex
	boards []repository.Board
	nextID int64
}

func NewBoardRepository() *BoardRepository {
	return &BoardRepository{nextID: 1}
}

func (r *BoardRepository) Create(ctx context.Context, board *repository.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	board.ID = r.nextID
	r.nextID++
	r.boards = append(r.boards, *board)
	return nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id int64) (*repository.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b := r.findActive(id)
	if b == nil {
		return nil, repository.ErrBoardNotFound
	}
	out := *b
	return &out, nil
}

func (r *BoardRepository) List(ctx context.Context) ([]repository.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	boards := []repository.Board{}
	for _, b := range r.boards {
		if b.DeletedAt == nil {
			boards = append(boards, b)
		}
	}
	return boards, nil
}

func (r *BoardRepository) Update(ctx context.Context, id int64, upd repository.BoardUpdate, now time.Time) (*repository.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.findActive(id)
	if b == nil {
		return nil, repository.ErrBoardNotFound
	}
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	b.UpdatedAt = now
	out := *b
	return &out, nil
}

func (r *BoardRepository) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.findActive(id)
	if b == nil {
		return repository.ErrBoardNotFound
	}
	at := now
	b.DeletedAt = &at
	return nil
}

// callers must hold mu
func (r *BoardRepository) findActive(id int64) *repository.Board {
	for i := range r.boards {
		if r.boards[i].ID == id && r.boards[i].DeletedAt == nil {
			return &r.boards[i]
		}
	}
	return nil
}
