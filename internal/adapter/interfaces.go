// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for handing selected
// units over to the downstream processor.
//
// The primary abstraction is [ProcessorAdapter], which decouples the service
// layer from the underlying protocol. Two implementations ship with the
// package: an asynchronous AWS Lambda invocation ([NewLambdaProcessorAdapter])
// and an HTTP POST ([NewHTTPProcessorAdapter]) for local and container
// deployments.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrDispatchNotAccepted] for a
// rejected asynchronous invocation).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-unit-dispatcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/processor_adapter_mock.go -package=mock

// ProcessorAdapter hands a dispatch payload to the downstream processor.
type ProcessorAdapter interface {
	// Dispatch sends payload exactly once and returns as soon as the
	// processor has accepted it. Processing itself is not awaited and its
	// outcome is never reported back.
	Dispatch(ctx context.Context, payload models.DispatchPayload) error
}
