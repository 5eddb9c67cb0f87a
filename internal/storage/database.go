package storage

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"kamingo-landing/internal/config"
)

type DatabaseProvider struct {
	pool *pgxpool.Pool
}

func NewDatabaseProvider(ctx context.Context, cfg *config.Config) (*DatabaseProvider, error) {
	dbPool, err := pgxpool.New(ctx, connectionStringFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseProvider{pool: dbPool}, nil
}

func (p *DatabaseProvider) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *DatabaseProvider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// RunMigrations creates the user table. The schema is a single flat record
// type, so DDL lives here rather than in a migration tool.
func (p *DatabaseProvider) RunMigrations(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			sub TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			picture TEXT NOT NULL DEFAULT '',
			last_logged_in TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_users_sub ON users (sub);
		CREATE INDEX IF NOT EXISTS idx_users_email ON users (email);
	`

	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func connectionStringFromConfig(cfg *config.Config) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Storage.Username, cfg.Storage.Password),
		Host:   net.JoinHostPort(cfg.Storage.Host, strconv.Itoa(cfg.Storage.Port)),
		Path:   cfg.Storage.Database,
	}

	return u.String()
}
