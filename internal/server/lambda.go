package server

import (
	"github.com/aws/aws-lambda-go/lambda"

	lambdaHandler "github.com/MKhiriev/go-unit-dispatcher/internal/handler/lambda"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
)

type lambdaServer struct {
	handler *lambdaHandler.Handler

	logger *logger.Logger
}

func newLambdaServer(handler *lambdaHandler.Handler, logger *logger.Logger) *lambdaServer {
	return &lambdaServer{
		handler: handler,
		logger:  logger,
	}
}

// run blocks for the lifetime of the execution environment. onTerminate is
// called when the runtime delivers SIGTERM.
func (l *lambdaServer) run(onTerminate func()) {
	lambda.StartWithOptions(l.handler.Handle, lambda.WithEnableSIGTERM(onTerminate))
}
