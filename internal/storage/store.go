// Package storage opens the relational store that holds the per-game result
// tables. Every backend is exposed through the same small Store interface so
// the query layer does not care which engine it talks to.
package storage

import (
	"context"
	"fmt"
	"strings"
)

// Supported store backends.
const (
	Postgres   = "postgres"
	MySQL      = "mysql"
	SQLite     = "sqlite"
	ClickHouse = "clickhouse"
)

// Rows is the subset of a driver result set the query layer needs.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Store is a read-mostly connection to one of the supported engines.
type Store interface {
	// Dialect names the SQL dialect spoken by the store.
	Dialect() string
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) error
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the store named by dialect using dsn.
func Open(ctx context.Context, dialect, dsn string) (Store, error) {
	switch strings.ToLower(dialect) {
	case Postgres, "postgresql", "pg":
		return OpenPostgres(ctx, dsn)
	case MySQL:
		return OpenMySQL(ctx, dsn)
	case SQLite, "sqlite3":
		return OpenSQLite(ctx, dsn)
	case ClickHouse, "ch":
		return OpenClickHouse(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported store dialect: %s", dialect)
	}
}
