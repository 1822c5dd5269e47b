package adapter

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
)

// NewProcessorAdapter builds the adapter selected by cfg.Driver.
func NewProcessorAdapter(cfg config.Adapter, awsCfg aws.Config, log *logger.Logger) (ProcessorAdapter, error) {
	switch cfg.Driver {
	case config.AdapterDriverLambda:
		return NewLambdaProcessorAdapter(NewLambdaClient(awsCfg, cfg), cfg, log), nil
	case config.AdapterDriverHTTP:
		return NewHTTPProcessorAdapter(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapterDriver, cfg.Driver)
	}
}
