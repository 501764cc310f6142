package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/board-service/internal/apperror"
	"github.com/gfdmit/board-service/internal/repository"
)

// CreatePost requires boardID to reference an active board. A missing or
// deleted board is the caller's mistake, so it comes back as a bad request
// with code INVALID_BOARD rather than a not-found.
func (svc *Service) CreatePost(ctx context.Context, boardID int64, title, content string) (*repository.Post, error) {
	if _, err := svc.boards.GetByID(ctx, boardID); err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			return nil, apperror.BadRequest(fmt.Sprintf("board with id %d does not exist", boardID)).
				WithCode("INVALID_BOARD")
		}
		return nil, err
	}

	now := svc.now()
	post := &repository.Post{
		BoardID:   boardID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (svc *Service) GetPost(ctx context.Context, id int64) (*repository.Post, error) {
	post, err := svc.posts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, apperror.NotFound(fmt.Sprintf("post with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetPosts lists active posts, scoped to one board when boardID is non-nil.
// The scope is a plain filter: an unknown board yields an empty list, not an
// error.
func (svc *Service) GetPosts(ctx context.Context, boardID *int64) ([]repository.Post, error) {
	return svc.posts.List(ctx, boardID)
}

func (svc *Service) UpdatePost(ctx context.Context, id int64, upd repository.PostUpdate) (*repository.Post, error) {
	post, err := svc.posts.Update(ctx, id, upd, svc.now())
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, apperror.NotFound(fmt.Sprintf("post with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (svc *Service) DeletePost(ctx context.Context, id int64) error {
	err := svc.posts.SoftDelete(ctx, id, svc.now())
	if errors.Is(err, repository.ErrPostNotFound) {
		return apperror.NotFound(fmt.Sprintf("post with id %d not found", id))
	}

	return err
}
