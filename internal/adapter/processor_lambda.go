// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// LambdaInvoker is the subset of the Lambda API used by the adapter.
type LambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type lambdaProcessorAdapter struct {
	client       LambdaInvoker
	functionName string
	timeout      time.Duration

	logger *logger.Logger
}

// NewLambdaClient builds a Lambda client from the shared AWS config, applying
// the region override of cfg.
func NewLambdaClient(awsCfg aws.Config, cfg config.Adapter) *lambda.Client {
	return lambda.NewFromConfig(awsCfg, func(o *lambda.Options) {
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
	})
}

// NewLambdaProcessorAdapter constructs a [ProcessorAdapter] invoking the
// function cfg.ProcessorName asynchronously.
func NewLambdaProcessorAdapter(client LambdaInvoker, cfg config.Adapter, log *logger.Logger) ProcessorAdapter {
	log.Debug().Str("function", cfg.ProcessorName).Msg("creating lambda processor adapter")
	return &lambdaProcessorAdapter{
		client:       client,
		functionName: cfg.ProcessorName,
		timeout:      cfg.RequestTimeout,
		logger:       log,
	}
}

// Dispatch implements [ProcessorAdapter] with an Event invocation. Lambda
// answers 202 once the event is queued; any other status is reported as
// [ErrDispatchNotAccepted].
func (l *lambdaProcessorAdapter) Dispatch(ctx context.Context, payload models.DispatchPayload) error {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	out, err := l.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(l.functionName),
		InvocationType: types.InvocationTypeEvent,
		Payload:        body,
	})
	if err != nil {
		log.Err(err).Str("func", "*lambdaProcessorAdapter.Dispatch").Str("function", l.functionName).Msg("invoke failed")
		return fmt.Errorf("invoke %s: %w", l.functionName, err)
	}

	if out.StatusCode != http.StatusAccepted {
		log.Error().Str("func", "*lambdaProcessorAdapter.Dispatch").
			Str("function", l.functionName).
			Int32("status", out.StatusCode).
			Msg("invocation was not accepted")
		return fmt.Errorf("%w: %s returned status %d", ErrDispatchNotAccepted, l.functionName, out.StatusCode)
	}

	log.Debug().Str("func", "*lambdaProcessorAdapter.Dispatch").
		Str("function", l.functionName).
		Int("units", len(payload.Units)).
		Msg("dispatch accepted")

	return nil
}
