package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/seikyu/internal/storage"
)

// MigrationsSource returns the migrate source URL for driver under dir.
func MigrationsSource(dir, driver string) string {
	if driver == storage.DriverMySQL {
		return "file://" + dir + "/mysql"
	}
	return "file://" + dir + "/postgresql"
}

// Migrate applies all pending migrations. It returns applied=false when the schema was
// already current.
func Migrate(dir, driver, connectionString string) (applied bool, err error) {
	if !storage.IsSQLDriver(driver) {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	m, err := migrate.New(MigrationsSource(dir, driver), migrationURL(driver, connectionString))
	if err != nil {
		return false, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run migrations: %w", err)
	}
	return true, nil
}

// migrationURL turns a go-sql-driver DSN into the mysql:// URL golang-migrate expects.
func migrationURL(driver, connectionString string) string {
	if driver == storage.DriverMySQL && !strings.HasPrefix(connectionString, "mysql://") {
		return "mysql://" + connectionString
	}
	return connectionString
}
