// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package invocation holds the transport-independent part of a units
// invocation: decoding the inbound body and shaping the outcome into the
// success or failure response.
package invocation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-unit-dispatcher/internal/app"
	"github.com/MKhiriev/go-unit-dispatcher/internal/service"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// ErrInvalidRequestBody is wrapped by DecodeRequest when the body is not a
// JSON object.
var ErrInvalidRequestBody = errors.New(app.MsgInvalidRequestBody)

const (
	StatusSuccess = http.StatusOK
	StatusFailure = http.StatusInternalServerError
)

// DecodeRequest parses body into a request. An empty body is treated as an
// empty object so that the field validation reports what is missing.
func DecodeRequest(body []byte) (models.ProcessUnitsRequest, error) {
	var request models.ProcessUnitsRequest

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return request, nil
	}

	if err := json.Unmarshal(body, &request); err != nil {
		return models.ProcessUnitsRequest{}, service.InvalidArgument(fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
	}

	return request, nil
}

// Respond returns the status code and body for the outcome of ProcessUnits.
func Respond(result models.ProcessUnitsResult, err error) (int, any) {
	if err != nil {
		return StatusFailure, Failure(err)
	}

	return StatusSuccess, models.NewProcessUnitsResponse(app.MsgUnitsProcessed, result)
}

// Failure builds the failure body. The error field carries err's message, or
// the unknown-error text when there is none.
func Failure(err error) models.ErrorResponse {
	return models.ErrorResponse{
		Message: app.MsgErrorProcessingUnits,
		Error:   ErrorText(err),
	}
}

func ErrorText(err error) string {
	if err == nil || err.Error() == "" {
		return app.MsgUnknownError
	}

	return err.Error()
}

// PanicError converts a recovered panic value into an error. Values that carry
// no message yield nil.
func PanicError(recovered any) error {
	switch v := recovered.(type) {
	case nil:
		return nil
	case error:
		return v
	case string:
		if v == "" {
			return nil
		}
		return errors.New(v)
	default:
		return nil
	}
}
