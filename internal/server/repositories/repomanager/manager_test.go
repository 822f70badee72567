package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Manager = (*MemoryManager)(nil)
	_ Manager = (*PostgresManager)(nil)
)

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestMemoryManager_WithinTx_Commit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		_, err := repo.Create(ctx, "a@x.com", "A", []byte("h"))
		return err
	})
	require.NoError(t, err)

	_, err = m.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, m.Close())
}

func TestMemoryManager_WithinTx_RollbackOnError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	boom := errors.New("mint failed")

	err := m.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if _, err := repo.Create(ctx, "a@x.com", "A", []byte("h")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = m.Users().GetUserByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresManager_WithinTx_CommitAndRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewPostgres(db)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, m.WithinTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		assert.IsType(t, &users.PostgresRepository{}, repo)
		return nil
	}))

	mock.ExpectBegin()
	mock.ExpectRollback()
	boom := errors.New("boom")
	require.ErrorIs(t, m.WithinTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
		return boom
	}), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresManager_Users(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.IsType(t, &users.PostgresRepository{}, NewPostgres(db).Users())
}

func TestRunMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	})
	require.NoError(t, NewPostgres(db).RunMigrations(context.Background()))

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})
	require.EqualError(t, NewPostgres(db).RunMigrations(context.Background()), "boom")
}

func TestOpenPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	origOpen := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		assert.Equal(t, "postgres://db", dsn)
		return db, nil
	}
	t.Cleanup(func() { sqlOpen = origOpen })

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return nil
	})

	mock.ExpectPing()
	mock.ExpectClose()

	m, err := OpenPostgres(context.Background(), "postgres://db")
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_PingError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	origOpen := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() { sqlOpen = origOpen })

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	_, err = OpenPostgres(context.Background(), "postgres://db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping db")
}
