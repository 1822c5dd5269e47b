package service

import (
	"github.com/MKhiriev/go-unit-dispatcher/internal/adapter"
	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/store"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

type Services struct {
	UnitService    UnitService
	AppInfoService AppInfoService
}

// NewServices wires the unit pipeline as logging → validation → core.
func NewServices(storages *store.Storages, processor adapter.ProcessorAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	unitService := NewUnitService(storages.UnitStorage, processor, logger)
	unitService = NewUnitValidationService().Wrap(unitService)
	unitService = NewUnitLoggingService().Wrap(unitService)

	return &Services{
		UnitService:    unitService,
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
