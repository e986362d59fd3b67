// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/absmach/smppc/pkg/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

var (
	errMigration               = errors.New("failed to apply migrations")
	errInvalidConnectionString = errors.New("invalid connection string")
	errConnect                 = errors.New("failed to connect to the event store")
)

// PoolConfig sizes the pgx pool shared by the event repository.
type PoolConfig struct {
	// MaxConnLifetime is the duration since creation after which a connection will be automatically closed.
	MaxConnLifetime time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"1h"`

	// MaxConnLifetimeJitter spreads connection closes over the given duration.
	MaxConnLifetimeJitter time.Duration `env:"MAX_CONN_LIFETIME_JITTER" envDefault:"0"`

	// MaxConnIdleTime is the duration after which an idle connection will be automatically closed by the health check.
	MaxConnIdleTime time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"15m"`

	// MaxConns is the maximum size of the pool.
	MaxConns uint16 `env:"MAX_CONNS" envDefault:"5"`

	// MinConns is the minimum size of the pool. After connection closes, the pool might dip below MinConns. A low
	// number of MinConns might mean the pool is empty after MaxConnLifetime until the health check has a chance
	// to create new connections.
	MinConns uint16 `env:"MIN_CONNS" envDefault:"1"`

	// HealthCheckPeriod is the duration between checks of the health of idle connections.
	HealthCheckPeriod time.Duration `env:"HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

// Config defines the options that are used when connecting to the event store.
type Config struct {
	Host        string     `env:"HOST"             envDefault:"localhost"`
	Port        string     `env:"PORT"             envDefault:"5432"`
	User        string     `env:"USER"             envDefault:"smppc"`
	Pass        string     `env:"PASS"             envDefault:"smppc"`
	Name        string     `env:"NAME"             envDefault:""`
	SSLMode     string     `env:"SSL_MODE"         envDefault:"disable"`
	SSLCert     string     `env:"SSL_CERT"         envDefault:""`
	SSLKey      string     `env:"SSL_KEY"          envDefault:""`
	SSLRootCert string     `env:"SSL_ROOT_CERT"    envDefault:""`
	AppName     string     `env:"APP_NAME"         envDefault:"smppc"`
	Migrations  string     `env:"MIGRATIONS_TABLE" envDefault:"smppc_migrations"`
	Pool        PoolConfig `envPrefix:"POOL_"`
}

const pingTimeout = 5 * time.Second

// Setup connects to Postgres, checks the connection and applies pending
// migrations, recording them in cfg.Migrations.
func Setup(cfg Config, migrations migrate.MemoryMigrationSource) (*sqlx.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(errConnect, err)
	}

	set := migrate.MigrationSet{TableName: cfg.Migrations}
	if _, err = set.Exec(db.DB, "postgres", migrations, migrate.Up); err != nil {
		db.Close()
		return nil, errors.Wrap(errMigration, err)
	}

	return db, nil
}

// Connect opens a pgx pool sized by cfg.Pool and exposes it through sqlx.
func Connect(cfg Config) (*sqlx.DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.dbConnURL())
	if err != nil {
		return nil, errors.Wrap(errInvalidConnectionString, err)
	}

	poolCfg.MaxConnIdleTime = cfg.Pool.MaxConnIdleTime
	poolCfg.MaxConnLifetimeJitter = cfg.Pool.MaxConnLifetimeJitter
	poolCfg.MaxConnLifetime = cfg.Pool.MaxConnLifetime
	poolCfg.MaxConns = int32(cfg.Pool.MaxConns)
	poolCfg.MinConns = int32(cfg.Pool.MinConns)
	poolCfg.HealthCheckPeriod = cfg.Pool.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	return sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx"), nil
}

// dbConnURL renders cfg as a libpq keyword/value string, skipping empty values.
func (cfg Config) dbConnURL() string {
	params := []struct {
		key, val string
	}{
		{"host", cfg.Host},
		{"port", cfg.Port},
		{"user", cfg.User},
		{"password", cfg.Pass},
		{"dbname", cfg.Name},
		{"sslmode", cfg.SSLMode},
		{"sslcert", cfg.SSLCert},
		{"sslkey", cfg.SSLKey},
		{"sslrootcert", cfg.SSLRootCert},
		{"application_name", cfg.AppName},
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.val != "" {
			parts = append(parts, p.key+"="+p.val)
		}
	}

	return strings.Join(parts, " ")
}
