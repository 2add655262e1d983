package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// sqlStore serves the database/sql backed engines (MySQL and SQLite).
type sqlStore struct {
	db      *sql.DB
	dialect string
}

// OpenMySQL opens a MySQL store from a go-sql-driver DSN
// (user:pass@tcp(host:3306)/league).
func OpenMySQL(ctx context.Context, dsn string) (Store, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing mysql dsn: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging mysql: %w", err)
	}
	return &sqlStore{db: db, dialect: MySQL}, nil
}

// OpenSQLite opens (or creates) a SQLite database file. ":memory:" is allowed.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: an in-memory database is private to its connection, and
	// SQLite only has one writer anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}
	return &sqlStore{db: db, dialect: SQLite}, nil
}

// NewSQLStore wraps an already opened *sql.DB speaking the given dialect.
func NewSQLStore(db *sql.DB, dialect string) Store {
	return &sqlStore{db: db, dialect: dialect}
}

func (s *sqlStore) Dialect() string { return s.dialect }

func (s *sqlStore) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *sqlStore) Exec(ctx context.Context, query string, args ...any) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *sqlStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *sqlStore) Close() error { return s.db.Close() }
