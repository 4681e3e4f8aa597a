package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/handler"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/workers"
)

// ShutdownHook releases one resource after the HTTP server has stopped.
type ShutdownHook struct {
	Name  string
	Close func() error
}

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	hooks           []ShutdownHook
	shutdownTimeout time.Duration

	stopWorkers context.CancelFunc
	listening   chan struct{}
	logger      *logger.Logger
}

// NewServer builds the HTTP server around handlers. bgWorkers run for the
// lifetime of the server; hooks run in order once it has stopped.
func NewServer(handlers *handler.Handlers, cfg config.Server, bgWorkers []workers.Worker, hooks []ShutdownHook, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return newServer(handlers.HTTP.Init(), cfg, bgWorkers, hooks, logger), nil
}

func newServer(h http.Handler, cfg config.Server, bgWorkers []workers.Worker, hooks []ShutdownHook, logger *logger.Logger) *server {
	return &server{
		httpServer:      newHTTPServer(h, cfg, logger),
		workers:         workers.NewWorkers(bgWorkers...),
		hooks:           hooks,
		shutdownTimeout: cfg.ShutdownTimeout,
		stopWorkers:     func() {},
		listening:       make(chan struct{}),
		logger:          logger,
	}
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error

	// finish HTTP server
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}

	// stop background workers
	s.stopWorkers()
	s.workers.Wait()

	// release resources in registration order
	for _, hook := range s.hooks {
		s.logger.Info().Str("resource", hook.Name).Msg("closing")
		if err := hook.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", hook.Name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Error().Err(err).Msg("errors during shutdown")
	}
}

// run serves until ctx is done or the listener fails, then shuts down.
func (s *server) run(ctx context.Context) error {
	if err := s.httpServer.listen(); err != nil {
		s.Shutdown()
		return fmt.Errorf("listen %s: %w", s.httpServer.server.Addr, err)
	}
	close(s.listening)

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	s.stopWorkers = stopWorkers
	s.workers.Run(workersCtx)

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
