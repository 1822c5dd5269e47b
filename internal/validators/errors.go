package validators

import (
	"errors"

	"github.com/MKhiriev/go-unit-dispatcher/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAmountToProcess = errors.New(app.MsgInvalidAmountToProcess)
	ErrInvalidDryRun          = errors.New(app.MsgInvalidDryRun)
	ErrPayloadSizeMismatch    = errors.New("dispatch payload carries more units than amountToProcess")
)
