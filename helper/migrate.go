package helper

//nolint:revive
import (
	"clinic/config"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

type action struct {
	run  func(mig *migrate.Migrate) error
	done string
}

// Actions accepted by Runner. "drop" reverts every schema version, "down" only the latest one.
var actions = map[string]action{
	"up":      {run: func(m *migrate.Migrate) error { return m.Up() }, done: "Clinic schema is up to date"},
	"step-up": {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Applied next clinic schema version"},
	"down":    {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Reverted latest clinic schema version"},
	"drop":    {run: func(m *migrate.Migrate) error { return m.Down() }, done: "Reverted every clinic schema version"},
}

func dbName(cfg *config.Config) string {
	return cfg.DB.Postgres.Prefix + cfg.DB.Postgres.Write.Name
}

// DSN builds the golang-migrate connection string for the write database.
func DSN(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)

	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + dbName(cfg),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func Runner(cfg *config.Config, name string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	mig, err := migrate.New(migrationsSource, DSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	defer mig.Close()

	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %s migration: %w", name, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg(act.done)

	return nil
}
