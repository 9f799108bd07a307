package storage

import (
	"database/sql"
	"fmt"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

// NewAdapter builds the adapter for driver. The file driver stores under dir; the SQL
// drivers use db, which must be non-nil for them.
func NewAdapter(driver, dir string, db *sql.DB) (Adapter, error) {
	switch driver {
	case DriverFile:
		return OpenFileAdapter(dir)
	case DriverMemory:
		return OpenMemoryAdapter(), nil
	case DriverPostgres:
		if db == nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "postgres storage requires a database connection")
		}
		return NewPostgreSQLAdapter(db), nil
	case DriverMySQL:
		if db == nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "mysql storage requires a database connection")
		}
		return NewMySQLAdapter(db), nil
	default:
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("unsupported storage driver: %s (valid options: file, memory, postgres, mysql)", driver),
		)
	}
}

// IsSQLDriver reports whether driver is backed by a database connection.
func IsSQLDriver(driver string) bool {
	return driver == DriverPostgres || driver == DriverMySQL
}
