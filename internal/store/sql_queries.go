package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// unitsOrderColumn keeps the SQL store order stable between reads.
const unitsOrderColumn = "id"

// buildSelectAllUnitsQuery builds the read-all query for the units table.
func buildSelectAllUnitsQuery(table string, placeholder sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select("*").
		From(table).
		OrderBy(unitsOrderColumn).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
