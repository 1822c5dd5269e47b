// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers supported by [Storage.Driver].
const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// Adapter drivers supported by [Adapter.Driver].
const (
	AdapterDriverLambda = "lambda"
	AdapterDriverHTTP   = "http"
)

// Server modes supported by [Server.Mode].
const (
	ServerModeLambda = "lambda"
	ServerModeHTTP   = "http"
)

// StructuredConfig is the top-level configuration container for the unit
// dispatcher. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file, with defaults filling whatever is left unset.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// logging level.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the units record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter selects and configures the downstream processor transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server selects the inbound transport (Lambda runtime or HTTP).
	Server Server `envPrefix:"SERVER_"`

	// AWSRegion is the region provided by the Lambda runtime. It is used as
	// the fallback region of every AWS client.
	// Env: AWS_REGION
	AWSRegion string `env:"AWS_REGION"`

	// LambdaFunctionName is set by the Lambda runtime. When present the
	// default server mode is "lambda".
	// Env: AWS_LAMBDA_FUNCTION_NAME
	LambdaFunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the role label attached to every log entry.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment is a free-form deployment label (e.g. "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is the minimum zerolog level (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// Storage groups the configuration for the units record store.
type Storage struct {
	// Driver selects the backend: "dynamodb", "postgres" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER" validate:"omitempty,oneof=dynamodb postgres sqlite"`

	// DynamoDB holds settings for the DynamoDB backend.
	DynamoDB DynamoDB `envPrefix:"DYNAMODB_"`

	// DB holds settings for the SQL backends.
	DB DB `envPrefix:"DB_"`
}

// DynamoDB holds settings for reading units from a DynamoDB table.
type DynamoDB struct {
	// TableName is the units table scanned on every invocation.
	// Env: STORAGE_DYNAMODB_TABLE_NAME
	TableName string `env:"TABLE_NAME"`

	// Region overrides the AWS region of the DynamoDB client.
	// Env: STORAGE_DYNAMODB_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the DynamoDB endpoint (e.g. DynamoDB Local).
	// Env: STORAGE_DYNAMODB_ENDPOINT
	Endpoint string `env:"ENDPOINT" validate:"omitempty,url"`

	// PageSize limits the number of items returned by a single Scan page.
	// Zero leaves the service default. All pages are always read.
	// Env: STORAGE_DYNAMODB_PAGE_SIZE
	PageSize int32 `env:"PAGE_SIZE" validate:"gte=0"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// TableName is the table holding unit rows.
	// Env: STORAGE_DB_TABLE_NAME
	TableName string `env:"TABLE_NAME"`

	// Migrate runs the embedded migrations on startup. Intended for local
	// development only.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Adapter holds configuration of the downstream processor transport.
type Adapter struct {
	// Driver selects the transport: "lambda" or "http".
	// Env: ADAPTER_DRIVER
	Driver string `env:"DRIVER" validate:"omitempty,oneof=lambda http"`

	// ProcessorName is the function name (or ARN) invoked by the lambda
	// driver.
	// Env: ADAPTER_PROCESSOR_NAME
	ProcessorName string `env:"PROCESSOR_NAME"`

	// ProcessorURL is the endpoint the http driver posts payloads to.
	// Env: ADAPTER_PROCESSOR_URL
	ProcessorURL string `env:"PROCESSOR_URL" validate:"omitempty,url"`

	// Region overrides the AWS region of the Lambda client.
	// Env: ADAPTER_REGION
	Region string `env:"REGION"`

	// RequestTimeout bounds a single dispatch call (e.g. "5s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Server holds settings of the inbound transport.
type Server struct {
	// Mode selects the inbound transport: "lambda" or "http".
	// Env: SERVER_MODE
	Mode string `env:"MODE" validate:"omitempty,oneof=lambda http"`

	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// HTTP request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to the fields no source has set. Returns a fully
// populated *StructuredConfig or an error if any source fails to load or the
// final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
