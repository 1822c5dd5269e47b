package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// unitRepository is the SQL-backed implementation of [UnitStorage].
// Every column of the units table becomes a key of the returned unit record.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type unitRepository struct {
	db     *DB
	table  string
	logger *logger.Logger
}

// NewUnitRepository constructs a [UnitStorage] reading from table over the
// provided database connection.
func NewUnitRepository(db *DB, table string, logger *logger.Logger) UnitStorage {
	logger.Debug().Str("table", table).Msg("creating unit repository")
	return &unitRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// GetAll reads every row of the units table ordered by id.
//
// Error handling:
//   - PostgreSQL undefined_table (42P01) → [ErrUnitsTableNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Row iteration or scan failure → wrapped [ErrScanningRows].
func (r *unitRepository) GetAll(ctx context.Context) ([]models.Unit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUnitsQuery(r.table, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*unitRepository.GetAll").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*unitRepository.GetAll").
			Bool("transient", r.db.classify(err) == Retryable).
			Msg("error querying units")

		switch postgresError(err) {
		case pgerrcode.UndefinedTable:
			return nil, fmt.Errorf("%w: %s", ErrUnitsTableNotFound, r.table)
		default:
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	defer rows.Close()

	units, err := scanUnits(rows)
	if err != nil {
		log.Err(err).Str("func", "*unitRepository.GetAll").Msg("error scanning units")
		return nil, err
	}

	return units, nil
}

// scanUnits converts every remaining row into a unit record keyed by column
// name. Byte slices are stored as strings.
func scanUnits(rows *sql.Rows) ([]models.Unit, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	units := make([]models.Unit, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		unit := make(models.Unit, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				unit[column] = string(b)
				continue
			}
			unit[column] = values[i]
		}
		units = append(units, unit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return units, nil
}
