package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/handler"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
)

type server struct {
	httpServer   *httpServer
	lambdaServer *lambdaServer

	shutdownOnce  sync.Once
	shutdownHooks []func()

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("mode", cfg.Mode).Msg("creating new server...")
	servers := new(server)

	switch {
	case cfg.Mode == config.ServerModeHTTP && handlers.HTTP != nil:
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	case cfg.Mode == config.ServerModeLambda && handlers.Lambda != nil:
		servers.lambdaServer = newLambdaServer(handlers.Lambda, logger)
	default:
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) OnShutdown(fn func()) {
	s.shutdownHooks = append(s.shutdownHooks, fn)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		for _, hook := range s.shutdownHooks {
			hook()
		}
	})
}

func (s *server) run() error {
	if s.lambdaServer != nil {
		s.logger.Info().Msg("Starting Lambda runtime")
		s.lambdaServer.run(s.Shutdown)
		return nil
	}

	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
