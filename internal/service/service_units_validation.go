package service

import (
	"context"

	"github.com/MKhiriev/go-unit-dispatcher/internal/validators"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

type UnitValidationService struct {
	inner     UnitService
	validator validators.Validator
}

func NewUnitValidationService() UnitServiceWrapper {
	return &UnitValidationService{
		validator: validators.NewProcessUnitsValidator(),
	}
}

// ProcessUnits rejects requests whose amountToProcess or dryRun is not usable
// before the record store is touched.
func (v *UnitValidationService) ProcessUnits(ctx context.Context, request models.ProcessUnitsRequest) (models.ProcessUnitsResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.ProcessUnitsResult{}, InvalidArgument(err)
	}

	return v.inner.ProcessUnits(ctx, request)
}

func (v *UnitValidationService) Wrap(wrapped UnitService) UnitService {
	v.inner = wrapped
	return v
}
