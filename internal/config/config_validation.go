// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup: field-level rules
// declared in `validate` tags plus the fields each selected driver needs.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfigs, err)
	}

	return errors.Join(
		cfg.Storage.validate(),
		cfg.Adapter.validate(),
		cfg.Server.validate(),
	)
}

func (s Storage) validate() error {
	switch s.Driver {
	case StorageDriverDynamoDB:
		if s.DynamoDB.TableName == "" {
			return fmt.Errorf("%w: dynamodb table name is required", ErrInvalidStorageConfigs)
		}
	case StorageDriverPostgres, StorageDriverSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s requires a database DSN", ErrInvalidStorageConfigs, s.Driver)
		}
		if s.DB.TableName == "" {
			return fmt.Errorf("%w: database table name is required", ErrInvalidStorageConfigs)
		}
	}

	return nil
}

func (a Adapter) validate() error {
	switch a.Driver {
	case AdapterDriverLambda:
		if a.ProcessorName == "" {
			return fmt.Errorf("%w: lambda driver requires a processor name", ErrInvalidAdapterConfigs)
		}
	case AdapterDriverHTTP:
		if a.ProcessorURL == "" {
			return fmt.Errorf("%w: http driver requires a processor URL", ErrInvalidAdapterConfigs)
		}
	}

	return nil
}

func (s Server) validate() error {
	if s.Mode == ServerModeHTTP && s.HTTPAddress == "" {
		return fmt.Errorf("%w: http mode requires an address", ErrInvalidServerConfigs)
	}

	return nil
}
