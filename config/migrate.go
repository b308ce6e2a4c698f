package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"cptui.GO/migrations"
)

// RunMigrations applies the embedded MySQL migrations. For sqlite the
// repository's AutoMigrate is used instead.
func RunMigrations() error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "mysql://"+withMultiStatements(MySQLDSN()))
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations up: %w", err)
	}
	v, dirty, _ := m.Version()
	log.Printf("Migrations applied (version %d, dirty %v)", v, dirty)
	return nil
}

func withMultiStatements(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&multiStatements=true"
	}
	return dsn + "?multiStatements=true"
}
