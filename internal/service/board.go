package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/board-service/internal/apperror"
	"github.com/gfdmit/board-service/internal/repository"
)

func (svc *Service) CreateBoard(ctx context.Context, title, description string) (*repository.Board, error) {
	now := svc.now()
	board := &repository.Board{
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.boards.Create(ctx, board); err != nil {
		return nil, err
	}

	return board, nil
}

func (svc *Service) GetBoard(ctx context.Context, id int64) (*repository.Board, error) {
	board, err := svc.boards.GetByID(ctx, id)
	if errors.Is(err, repository.ErrBoardNotFound) {
		return nil, apperror.NotFound(fmt.Sprintf("board with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}

	return board, nil
}

func (svc *Service) GetBoards(ctx context.Context) ([]repository.Board, error) {
	return svc.boards.List(ctx)
}

// UpdateBoard changes only the fields set in upd; a nil field keeps the stored
// value. The board's updated_at is stamped even when upd is empty.
func (svc *Service) UpdateBoard(ctx context.Context, id int64, upd repository.BoardUpdate) (*repository.Board, error) {
	board, err := svc.boards.Update(ctx, id, upd, svc.now())
	if errors.Is(err, repository.ErrBoardNotFound) {
		return nil, apperror.NotFound(fmt.Sprintf("board with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}

	return board, nil
}

// DeleteBoard soft-deletes the board. Posts on the board are left alone and
// stay readable through their own ids.
func (svc *Service) DeleteBoard(ctx context.Context, id int64) error {
	err := svc.boards.SoftDelete(ctx, id, svc.now())
	if errors.Is(err, repository.ErrBoardNotFound) {
		return apperror.NotFound(fmt.Sprintf("board with id %d not found", id))
	}

	return err
}
