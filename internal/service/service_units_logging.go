package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

type UnitLoggingService struct {
	inner UnitService
}

func NewUnitLoggingService() UnitServiceWrapper {
	return &UnitLoggingService{}
}

func (l *UnitLoggingService) ProcessUnits(ctx context.Context, request models.ProcessUnitsRequest) (models.ProcessUnitsResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Debug().
		RawJSON("amount_to_process", rawOrNull(request.AmountToProcess)).
		RawJSON("dry_run", rawOrNull(request.DryRun)).
		Msg("processing units")

	result, err := l.inner.ProcessUnits(ctx, request)
	if err != nil {
		log.Err(err).
			Str("kind", KindOf(err).String()).
			Dur("duration", time.Since(start)).
			Msg("processing units failed")
		return result, err
	}

	log.Info().
		Int("total_units", result.TotalUnits).
		Int("units_to_process", result.UnitsToProcess).
		Bool("dry_run", result.DryRun).
		Dur("duration", time.Since(start)).
		Msg("units processed")

	return result, nil
}

func (l *UnitLoggingService) Wrap(wrapped UnitService) UnitService {
	l.inner = wrapped
	return l
}

// rawOrNull keeps the log line valid JSON for missing fields.
func rawOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
