// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-unit-dispatcher/internal/adapter"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/store"
	"github.com/MKhiriev/go-unit-dispatcher/internal/validators"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

type unitService struct {
	unitStorage store.UnitStorage
	processor   adapter.ProcessorAdapter

	payloadValidator validators.Validator

	logger *logger.Logger
}

func NewUnitService(unitStorage store.UnitStorage, processor adapter.ProcessorAdapter, logger *logger.Logger) UnitService {
	return &unitService{
		unitStorage: unitStorage,
		processor:   processor,

		payloadValidator: validators.NewProcessUnitsValidator(),

		logger: logger,
	}
}

// ProcessUnits reads every unit, selects min(amountToProcess, total) of them
// and, when dryRun is true, hands the selection to the processor in a single
// dispatch. With dryRun false nothing is dispatched.
func (s *unitService) ProcessUnits(ctx context.Context, request models.ProcessUnitsRequest) (models.ProcessUnitsResult, error) {
	amount, ok := request.Amount()
	if !ok {
		return models.ProcessUnitsResult{}, InvalidArgument(validators.ErrInvalidAmountToProcess)
	}
	dryRun, ok := request.IsDryRun()
	if !ok {
		return models.ProcessUnitsResult{}, InvalidArgument(validators.ErrInvalidDryRun)
	}

	units, err := s.unitStorage.GetAll(ctx)
	if err != nil {
		return models.ProcessUnitsResult{}, CollaboratorFailure(err)
	}

	result := models.ProcessUnitsResult{
		TotalUnits:     len(units),
		UnitsToProcess: min(amount, len(units)),
		DryRun:         dryRun,
	}

	if dryRun {
		payload := models.NewDispatchPayload(amount, units)
		if err = s.payloadValidator.Validate(ctx, payload, validators.FieldPayloadUnits); err != nil {
			return models.ProcessUnitsResult{}, fmt.Errorf("building dispatch payload: %w", err)
		}
		if err = s.processor.Dispatch(ctx, payload); err != nil {
			return models.ProcessUnitsResult{}, CollaboratorFailure(err)
		}
	}

	return result, nil
}
