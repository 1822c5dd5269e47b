package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("processor unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("processor not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("processor throttled the request")
	ErrInternalServerError = errors.New("processor internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("processor unavailable")

	// ErrDispatchNotAccepted is returned when the processor answered, but did
	// not acknowledge the asynchronous invocation.
	ErrDispatchNotAccepted = errors.New("dispatch was not accepted by the processor")

	// ErrEncodingPayload is returned when the dispatch payload cannot be
	// serialized.
	ErrEncodingPayload = errors.New("error encoding dispatch payload")

	// ErrUnknownAdapterDriver is returned by [NewProcessorAdapter] for an
	// unsupported driver name.
	ErrUnknownAdapterDriver = errors.New("unknown adapter driver")
)
