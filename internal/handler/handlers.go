package handler

import (
	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/handler/http"
	"github.com/MKhiriev/go-unit-dispatcher/internal/handler/lambda"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/service"
)

type Handlers struct {
	HTTP   *http.Handler
	Lambda *lambda.Handler
}

// NewHandlers creates the front-end selected by cfg.Mode.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("mode", cfg.Mode).Msg("creating new handlers...")

	handlers := &Handlers{}

	switch cfg.Mode {
	case config.ServerModeHTTP:
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	case config.ServerModeLambda:
		handlers.Lambda = lambda.NewHandler(services, logger)
	default:
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
