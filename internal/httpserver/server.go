package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gfdmit/board-service/config"
	"github.com/gfdmit/board-service/internal/logging"
)

type Server struct {
	server          *http.Server
	shutDownTimeout time.Duration
}

func New(conf config.HTTPServer, handler http.Handler) *Server {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
		Addr:         fmt.Sprintf("%v:%v", conf.BindAddress, conf.BindPort),
	}

	s := &Server{
		server:          srv,
		shutDownTimeout: conf.ShutdownTimeout,
	}
	return s
}

// Run serves until SIGINT/SIGTERM, then drains within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	logger := logging.New("httpserver")
	logger.Info().Str("addr", s.server.Addr).Msg("listening")

	go func() {
		err := s.server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan

	logger.Info().Msg("http server shutdown")

	ctx, cancel := context.WithTimeout(ctx, s.shutDownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
