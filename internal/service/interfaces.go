package service

import (
	"context"

	"github.com/MKhiriev/go-unit-dispatcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UnitService runs one invocation of the units pipeline: validate the
// request, read every unit, clamp the quota and optionally dispatch.
type UnitService interface {
	// ProcessUnits returns the counts of a successful invocation. Every
	// failure is a *Error carrying its [ErrorKind].
	ProcessUnits(ctx context.Context, request models.ProcessUnitsRequest) (models.ProcessUnitsResult, error)
}

// AppInfoService exposes build and version information of the running
// binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionResponse
}

// UnitServiceWrapper defines middleware composition for UnitService.
// Implementations wrap an existing UnitService to add behavior such as
// logging or validating.
type UnitServiceWrapper interface {
	Wrap(UnitService) UnitService // returns a decorated UnitService applying additional behavior
}
