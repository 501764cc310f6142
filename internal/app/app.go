package app

import (
	"context"
	"fmt"

	"github.com/gfdmit/board-service/config"
	v1 "github.com/gfdmit/board-service/internal/handlers/http/v1"
	"github.com/gfdmit/board-service/internal/handlers/ws"
	"github.com/gfdmit/board-service/internal/httpserver"
	"github.com/gfdmit/board-service/internal/logging"
	"github.com/gfdmit/board-service/internal/metrics"
	"github.com/gfdmit/board-service/internal/repository"
	"github.com/gfdmit/board-service/internal/repository/memory"
	"github.com/gfdmit/board-service/internal/repository/postgres"
	"github.com/gfdmit/board-service/internal/service"
)

func Run(conf config.Config) error {
	ctx := context.Background()

	logging.Setup(conf.Log.Level)

	var (
		boards repository.BoardRepository
		posts  repository.PostRepository
	)

	switch conf.Storage.Backend {
	case "memory":
		boards = memory.NewBoardRepository()
		posts = memory.NewPostRepository()
	case "postgres":
		db, err := postgres.Open(conf.Postgres)
		if err != nil {
			return fmt.Errorf("error when setting up repository: %w", err)
		}
		defer db.Close()
		boards = postgres.NewBoardRepository(db)
		posts = postgres.NewPostRepository(db)
	default:
		return fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}

	svc := service.New(boards, posts)

	handler, err := v1.New(svc, metrics.New(), ws.NewHub())
	if err != nil {
		return fmt.Errorf("error when setting up handler: %w", err)
	}

	server := httpserver.New(conf.HTTPServer, handler)

	return server.Run(ctx)
}
