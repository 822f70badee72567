package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresManager vends PostgreSQL-backed repositories over a single pool.
type PostgresManager struct {
	db *sql.DB
}

// sqlOpen and gooseUpContext are seams for tests.
var (
	sqlOpen        = sql.Open
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// OpenPostgres connects to dsn, checks the connection and applies the
// embedded migrations. The caller must Close the returned manager.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	m := NewPostgres(db)
	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return m, nil
}

// NewPostgres wraps an already opened pool.
func NewPostgres(db *sql.DB) *PostgresManager {
	return &PostgresManager{db: db}
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, users.NewPostgresRepository(tx))
	})
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
