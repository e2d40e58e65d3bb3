package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies pending migrations from the embedded migrations directory.
func RunMigrations(cfg config.DatabaseConfig, log *zap.Logger) error {
	const op = "database.RunMigrations"

	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer sqlDB.Close()

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("database schema is up to date")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	logVersion(log, m)
	return nil
}

type versioner interface {
	Version() (version uint, dirty bool, err error)
}

func logVersion(log *zap.Logger, m versioner) {
	version, dirty, err := m.Version()
	if err != nil {
		log.Warn("migrations applied, schema version unknown", zap.Error(err))
		return
	}
	log.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
