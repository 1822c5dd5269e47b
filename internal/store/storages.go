package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
)

// Storages bundles the storage implementations selected by configuration and
// the resources they own.
type Storages struct {
	UnitStorage UnitStorage

	db *DB
}

// NewStorages builds the storage selected by cfg.Driver. SQL drivers open a
// connection pool and, when requested, apply the embedded migrations.
func NewStorages(ctx context.Context, cfg config.Storage, awsCfg aws.Config, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.StorageDriverDynamoDB:
		client := NewDynamoDBClient(awsCfg, cfg.DynamoDB)
		return &Storages{
			UnitStorage: NewDynamoUnitStorage(client, cfg.DynamoDB.TableName, cfg.DynamoDB.PageSize, log),
		}, nil

	case config.StorageDriverPostgres, config.StorageDriverSQLite:
		db, err := connectSQL(ctx, cfg, log)
		if err != nil {
			return nil, err
		}

		if cfg.DB.Migrate {
			if err = db.Migrate(); err != nil {
				_ = db.Close()
				return nil, err
			}
			log.Info().Str("driver", cfg.Driver).Msg("migrations applied")
		}

		return &Storages{
			UnitStorage: NewUnitRepository(db, cfg.DB.TableName, log),
			db:          db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
}

func connectSQL(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.StorageDriverPostgres {
		return NewConnectPostgres(ctx, cfg.DB, log)
	}

	return NewConnectSQLite(ctx, cfg.DB, log)
}

// Close releases the SQL connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
