package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/bucketwiki/blobstore/migrations"
	"github.com/dmitrijs2005/bucketwiki/common"
)

// PostgresStore keeps blobs in a single bytea table, one row per
// bucket/key pair. Useful where object storage is not available but a
// Postgres instance is. The row upsert gives the same per-key atomicity
// the contract promises; nothing here opens a transaction.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps an existing database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// OpenPostgresStore opens a connection for the given DSN (pgx stdlib
// driver) and runs the embedded migrations.
func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := NewPostgresStore(db)
	if err := s.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return gooseUpContext(ctx, s.db, ".")
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	query :=
		`SELECT EXISTS(SELECT 1 FROM blobs WHERE bucket = $1 AND key = $2)`

	var ok bool
	if err := s.db.QueryRowContext(ctx, query, bucket, key).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (s *PostgresStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	query :=
		`SELECT data FROM blobs
		 WHERE bucket = $1 AND key = $2
		 `

	var data []byte
	err := s.db.QueryRowContext(ctx, query, bucket, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return data, nil
}

func (s *PostgresStore) Put(ctx context.Context, bucket, key string, data []byte) error {
	query :=
		`INSERT INTO blobs (bucket, key, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (bucket, key) DO UPDATE SET data = EXCLUDED.data
		 `

	if _, err := s.db.ExecContext(ctx, query, bucket, key, data); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, bucket string) ([]string, error) {
	query :=
		`SELECT key FROM blobs
		 WHERE bucket = $1
		 `

	rows, err := s.db.QueryContext(ctx, query, bucket)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return keys, nil
}
