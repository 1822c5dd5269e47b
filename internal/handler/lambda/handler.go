// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lambda implements the AWS Lambda front-end of the unit dispatcher.
package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-unit-dispatcher/internal/handler/invocation"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/service"
	"github.com/MKhiriev/go-unit-dispatcher/internal/utils"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

var responseHeaders = map[string]string{
	"Content-Type": "application/json",
}

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("lambda handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Handle serves one invocation. payload is either the request object itself
// or an API Gateway proxy event whose body carries it. Failures are reported
// in the response, so the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, payload json.RawMessage) (response events.APIGatewayProxyResponse, err error) {
	ctx = h.withTraceID(ctx)
	log := logger.FromContext(ctx)

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Any("panic", recovered).Msg("panic while processing units")
			response = h.respond(ctx, models.ProcessUnitsResult{}, invocation.PanicError(recovered))
			err = nil
		}
	}()

	body, err := requestBody(payload)
	if err != nil {
		return h.respond(ctx, models.ProcessUnitsResult{}, err), nil
	}

	request, err := invocation.DecodeRequest(body)
	if err != nil {
		return h.respond(ctx, models.ProcessUnitsResult{}, err), nil
	}

	result, err := h.services.UnitService.ProcessUnits(ctx, request)
	return h.respond(ctx, result, err), nil
}

func (h *Handler) respond(ctx context.Context, result models.ProcessUnitsResult, err error) events.APIGatewayProxyResponse {
	status, body := invocation.Respond(result, err)

	encoded, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		logger.FromContext(ctx).Err(marshalErr).Msg("error encoding response")
		status = invocation.StatusFailure
		encoded, _ = json.Marshal(invocation.Failure(marshalErr))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders,
		Body:       string(encoded),
	}
}

// withTraceID attaches the Lambda request id (or a fresh id outside the
// runtime) to ctx and to a child logger stored in ctx.
func (h *Handler) withTraceID(ctx context.Context) context.Context {
	traceID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		traceID = lc.AwsRequestID
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return utils.WithTraceID(l.WithContext(ctx), traceID)
}

// requestBody returns the request JSON carried by payload.
func requestBody(payload json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return trimmed, nil
	}
	if _, ok := fields["body"]; !ok {
		return trimmed, nil
	}

	var proxyRequest events.APIGatewayProxyRequest
	if err := json.Unmarshal(trimmed, &proxyRequest); err != nil {
		return nil, service.InvalidArgument(fmt.Errorf("%w: %w", invocation.ErrInvalidRequestBody, err))
	}
	if !proxyRequest.IsBase64Encoded {
		return []byte(proxyRequest.Body), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(proxyRequest.Body)
	if err != nil {
		return nil, service.InvalidArgument(fmt.Errorf("%w: %w", invocation.ErrInvalidRequestBody, err))
	}

	return decoded, nil
}
