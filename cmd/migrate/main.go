package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	databaseFlag   = "database"
	migrationsFlag = "migrations-path"
)

func main() {
	database, migrationsPath := getFlagValues()
	validateFlags(database, migrationsPath)
	applyMigrations(database, migrationsPath)
}

type migrationLogger struct {
	logger *slog.Logger
}

func (ml migrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml migrationLogger) Verbose() bool { return true }

func getFlagValues() (database, migrations string) {
	databaseURL := pflag.StringP(databaseFlag, "d", "", "postgres connection string")
	migrationsPath := pflag.StringP(migrationsFlag, "m", "migrations", "path to migration files")
	pflag.Parse()
	return *databaseURL, *migrationsPath
}

func validateFlags(database, migrationsPath string) {
	var errs []error
	if database == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", databaseFlag))
	}
	if migrationsPath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", migrationsFlag))
	}
	if len(errs) != 0 {
		slog.Error("too few args", "err", errors.Join(errs...))
		os.Exit(2)
	}
}

func applyMigrations(database, migrationsPath string) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("pgx5://%s", database),
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		os.Exit(2)
	}
	m.Log = migrationLogger{logger: slog.Default()}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		os.Exit(2)
	}
	m.Log.Printf("migration applied")
}
