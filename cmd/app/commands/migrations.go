package commands

import (
	"log/slog"

	"github.com/allisson/seikyu/internal/database"
)

// RunMigrations applies the SQL migrations for the postgres or mysql storage driver.
// dir is the directory holding the postgresql/ and mysql/ migration sets.
func RunMigrations(logger *slog.Logger, dir, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	applied, err := database.Migrate(dir, driver, connectionString)
	if err != nil {
		return err
	}

	if !applied {
		logger.Info("database schema already up to date")
		return nil
	}
	logger.Info("migrations completed successfully")
	return nil
}
