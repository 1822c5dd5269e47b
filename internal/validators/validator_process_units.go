package validators

import (
	"context"

	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAmountToProcess targets the requested processing quota.
	FieldAmountToProcess = "amount_to_process"

	// FieldDryRun targets the dispatch switch of a processing request.
	FieldDryRun = "dry_run"

	// FieldPayloadUnits targets the bound between the quota and the units
	// carried by a dispatch payload.
	FieldPayloadUnits = "payload_units"
)

// ProcessUnitsValidator implements the Validator interface for the request
// and payload models of the units pipeline.
//
// The amount is checked before dryRun, so a request failing both rules
// reports the amount error.
type ProcessUnitsValidator struct {
}

// NewProcessUnitsValidator constructs a new ProcessUnitsValidator
// and returns it as the Validator interface.
func NewProcessUnitsValidator() Validator {
	return &ProcessUnitsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.ProcessUnitsRequest / *models.ProcessUnitsRequest
//   - models.DispatchPayload / *models.DispatchPayload
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ProcessUnitsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProcessUnitsRequest:
		return v.validateProcessUnitsRequest(ctx, value, fields...)
	case *models.ProcessUnitsRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProcessUnitsRequest(ctx, *value, fields...)

	case models.DispatchPayload:
		return v.validateDispatchPayload(ctx, value, fields...)
	case *models.DispatchPayload:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDispatchPayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProcessUnitsValidator) validateProcessUnitsRequest(_ context.Context, request models.ProcessUnitsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmountToProcess, FieldDryRun}
	}

	for _, f := range fields {
		switch f {
		case FieldAmountToProcess:
			if _, ok := request.Amount(); !ok {
				return ErrInvalidAmountToProcess
			}
		case FieldDryRun:
			if _, ok := request.IsDryRun(); !ok {
				return ErrInvalidDryRun
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProcessUnitsValidator) validateDispatchPayload(_ context.Context, payload models.DispatchPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayloadUnits}
	}

	for _, f := range fields {
		switch f {
		case FieldPayloadUnits:
			if len(payload.Units) > max(payload.AmountToProcess, 0) {
				return ErrPayloadSizeMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
