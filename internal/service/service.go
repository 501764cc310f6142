// Package service implements the board and post operations on top of the
// repositories. It owns every timestamp the stores write and translates
// repository sentinels into transport-facing errors; identifiers are assigned
// by the repositories.
package service

import (
	"time"

	"github.com/gfdmit/board-service/internal/repository"
)

type Service struct {
	boards repository.BoardRepository
	posts  repository.PostRepository

	now func() time.Time
}

func New(boards repository.BoardRepository, posts repository.PostRepository) *Service {
	return &Service{
		boards: boards,
		posts:  posts,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
