package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/handler"
	handlerHTTP "github.com/MKhiriev/go-unit-dispatcher/internal/handler/http"
	handlerLambda "github.com/MKhiriev/go-unit-dispatcher/internal/handler/lambda"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/service"
)

func TestNewServer_HTTPMode(t *testing.T) {
	handlers := &handler.Handlers{HTTP: handlerHTTP.NewHandler(&service.Services{}, 0, logger.Nop())}

	srv, err := NewServer(handlers, config.Server{Mode: config.ServerModeHTTP, HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.Nil(t, s.lambdaServer)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
}

func TestNewServer_LambdaMode(t *testing.T) {
	handlers := &handler.Handlers{Lambda: handlerLambda.NewHandler(&service.Services{}, logger.Nop())}

	srv, err := NewServer(handlers, config.Server{Mode: config.ServerModeLambda}, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.NotNil(t, s.lambdaServer)
	assert.Nil(t, s.httpServer)
}

func TestNewServer_ModeWithoutHandler(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		mode     string
	}{
		{name: "http mode without http handler", handlers: &handler.Handlers{}, mode: config.ServerModeHTTP},
		{name: "lambda mode without lambda handler", handlers: &handler.Handlers{}, mode: config.ServerModeLambda},
		{name: "unknown mode", handlers: &handler.Handlers{}, mode: "grpc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, config.Server{Mode: tt.mode}, logger.Nop())

			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, srv)
		})
	}
}

func TestShutdown_RunsHooksOnce(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	calls := 0
	s.OnShutdown(func() { calls++ })

	s.Shutdown()
	s.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	// give ListenAndServe a moment to bind
	time.Sleep(50 * time.Millisecond)
	srv.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestRun_WithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.Error(t, s.run())
}
