package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"dippy_dump/internal/bootstrap"
	"dippy_dump/internal/errors"
)

// sqlDrivers maps a configured store driver to its database/sql driver name.
var sqlDrivers = map[string]string{
	bootstrap.DriverPostgres: "pgx",
	bootstrap.DriverSQLite:   "sqlite",
}

type AdapterSQL struct {
	DB  *sql.DB
	cfg *bootstrap.Config
	log *zap.SugaredLogger
}

func NewAdapterSQL(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterSQL {
	return &AdapterSQL{
		cfg: cfg,
		log: log,
	}
}

func (a *AdapterSQL) Init(ctx context.Context) error {
	driver, ok := sqlDrivers[a.cfg.DBDriver]
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrUnknownDriver, a.cfg.DBDriver)
	}

	db, err := sql.Open(driver, a.cfg.DBDsn)
	if err != nil {
		return fmt.Errorf("open %s: %w: %w", a.cfg.DBDriver, errors.ErrQueryFailure, err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err = db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping %s: %w: %w", a.cfg.DBDriver, errors.ErrQueryFailure, err)
	}

	a.DB = db
	a.log.Infof("connected to %s store", a.cfg.DBDriver)
	return nil
}

// Placeholder returns the bind parameter syntax of the configured dialect.
func (a *AdapterSQL) Placeholder(n int) string {
	if a.cfg.DBDriver == bootstrap.DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (a *AdapterSQL) Close(ctx context.Context) error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
