package store

import (
	"context"

	"github.com/MKhiriev/go-unit-dispatcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UnitStorage is the read side of the units record store.
type UnitStorage interface {
	// GetAll returns every unit record in store order. An empty store yields
	// an empty slice and a nil error.
	GetAll(ctx context.Context) ([]models.Unit, error)
}

// ErrorClassificator tells whether a failed database operation looks
// transient. The result is only reported in logs; queries are never retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
