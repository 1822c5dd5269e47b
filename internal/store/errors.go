package store

import "errors"

// Sentinel errors returned by storage implementations to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrUnitsTableNotFound is returned when the configured units table does
	// not exist in the backing database.
	ErrUnitsTableNotFound = errors.New("units table was not found")

	// ErrScanningTable is returned when a DynamoDB Scan page request fails.
	ErrScanningTable = errors.New("error scanning units table")

	// ErrDecodingUnits is returned when DynamoDB items cannot be converted
	// into unit records.
	ErrDecodingUnits = errors.New("error decoding unit items")

	// ErrUnknownStorageDriver is returned by [NewStorages] for an
	// unsupported driver name.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan unit rows")
)
