package logic

import (
	"fmt"
	"strings"

	sqrl "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/halorec/league-stats/internal/models"
	"github.com/halorec/league-stats/internal/storage"
)

// Dialect renders the engine-specific fragments of the catalog and aggregate
// queries. Everything else about the query shape is shared.
type Dialect interface {
	Name() string
	Placeholder() sqrl.PlaceholderFormat
	// Quote quotes an identifier.
	Quote(ident string) string
	// Catalog selects table names LIKE pattern from the schema catalog.
	Catalog(pattern string) sqrl.SelectBuilder
	// Sum is a floating-point SUM of a column, 0 when every value is NULL.
	Sum(col string) string
	CountDistinct(col string) string
	// Divide divides two numeric expressions in floating point.
	Divide(num, den string) string
	// Fixed2 formats a numeric expression as text with exactly two decimals.
	Fixed2(expr string) string
	// QuerySettings is appended to the aggregate query, if non-empty.
	QuerySettings() string
	// CreateGameTable is the DDL for one per-game results table.
	CreateGameTable(table string) string
}

// DialectFor returns the dialect matching a storage backend name.
func DialectFor(name, schema string) (Dialect, error) {
	switch strings.ToLower(name) {
	case storage.Postgres, "postgresql", "pg":
		if schema == "" {
			schema = "public"
		}
		return postgresDialect{schema: schema}, nil
	case storage.MySQL:
		return mysqlDialect{}, nil
	case storage.SQLite, "sqlite3":
		return sqliteDialect{}, nil
	case storage.ClickHouse, "ch":
		return clickHouseDialect{}, nil
	}
	return nil, fmt.Errorf("unsupported dialect: %s", name)
}

// ansiQuote double-quotes an identifier, doubling embedded quotes.
func ansiQuote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// gameTableDDL builds the per-game table DDL from the dialect's text and integer types.
func gameTableDDL(d Dialect, table, text, integer, suffix string) string {
	cols := make([]string, 0, 9)
	cols = append(cols, d.Quote(models.ColPlayer)+" "+text+" NOT NULL")
	for _, c := range models.GameResultColumns[1:] {
		cols = append(cols, d.Quote(c)+" "+integer+" NOT NULL DEFAULT 0")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)%s", d.Quote(table), strings.Join(cols, ", "), suffix)
}

// --- PostgreSQL ---

type postgresDialect struct {
	schema string
}

func (postgresDialect) Name() string                        { return storage.Postgres }
func (postgresDialect) Placeholder() sqrl.PlaceholderFormat { return sqrl.Dollar }
func (postgresDialect) Quote(ident string) string           { return pq.QuoteIdentifier(ident) }

func (d postgresDialect) Catalog(pattern string) sqrl.SelectBuilder {
	return sqrl.Select("tablename").
		From("pg_tables").
		Where(sqrl.Eq{"schemaname": d.schema}).
		Where(sqrl.Like{"tablename": pattern}).
		OrderBy("tablename")
}

func (d postgresDialect) Sum(col string) string {
	return fmt.Sprintf("CAST(COALESCE(SUM(%s), 0) AS DOUBLE PRECISION)", d.Quote(col))
}

func (d postgresDialect) CountDistinct(col string) string {
	return fmt.Sprintf("COUNT(DISTINCT %s)", d.Quote(col))
}

func (postgresDialect) Divide(num, den string) string { return num + " / " + den }

// The leading 0 in the mask keeps "0.50" from rendering as ".50". The mask
// holds 21 integer digits; wider values render as '#'.
func (postgresDialect) Fixed2(expr string) string {
	return fmt.Sprintf("TO_CHAR(%s, 'FM999999999999999999990.00')", expr)
}

func (postgresDialect) QuerySettings() string { return "" }

func (d postgresDialect) CreateGameTable(table string) string {
	return gameTableDDL(d, table, "TEXT", "BIGINT", "")
}

// --- MySQL ---

type mysqlDialect struct{}

func (mysqlDialect) Name() string                        { return storage.MySQL }
func (mysqlDialect) Placeholder() sqrl.PlaceholderFormat { return sqrl.Question }

func (mysqlDialect) Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

func (mysqlDialect) Catalog(pattern string) sqrl.SelectBuilder {
	return sqrl.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = DATABASE()").
		Where(sqrl.Like{"table_name": pattern}).
		OrderBy("table_name")
}

func (d mysqlDialect) Sum(col string) string {
	return fmt.Sprintf("CAST(COALESCE(SUM(%s), 0) AS DOUBLE)", d.Quote(col))
}

func (d mysqlDialect) CountDistinct(col string) string {
	return fmt.Sprintf("COUNT(DISTINCT %s)", d.Quote(col))
}

func (mysqlDialect) Divide(num, den string) string { return num + " / " + den }

func (mysqlDialect) Fixed2(expr string) string {
	return fmt.Sprintf("CAST(CAST(%s AS DECIMAL(20,2)) AS CHAR)", expr)
}

func (mysqlDialect) QuerySettings() string { return "" }

func (d mysqlDialect) CreateGameTable(table string) string {
	return gameTableDDL(d, table, "VARCHAR(64)", "BIGINT", "")
}

// --- SQLite ---

type sqliteDialect struct{}

func (sqliteDialect) Name() string                        { return storage.SQLite }
func (sqliteDialect) Placeholder() sqrl.PlaceholderFormat { return sqrl.Question }
func (sqliteDialect) Quote(ident string) string           { return ansiQuote(ident) }

// SQLite has no default LIKE escape character.
func (sqliteDialect) Catalog(pattern string) sqrl.SelectBuilder {
	return sqrl.Select("name").
		From("sqlite_master").
		Where(sqrl.Eq{"type": "table"}).
		Where(`name LIKE ? ESCAPE '\'`, pattern).
		OrderBy("name")
}

func (d sqliteDialect) Sum(col string) string {
	return fmt.Sprintf("CAST(COALESCE(SUM(%s), 0) AS REAL)", d.Quote(col))
}

func (d sqliteDialect) CountDistinct(col string) string {
	return fmt.Sprintf("COUNT(DISTINCT %s)", d.Quote(col))
}

func (sqliteDialect) Divide(num, den string) string { return num + " / " + den }

func (sqliteDialect) Fixed2(expr string) string {
	return fmt.Sprintf("printf('%%.2f', %s)", expr)
}

func (sqliteDialect) QuerySettings() string { return "" }

func (d sqliteDialect) CreateGameTable(table string) string {
	return gameTableDDL(d, table, "TEXT", "INTEGER", "")
}

// --- ClickHouse ---

type clickHouseDialect struct{}

func (clickHouseDialect) Name() string                        { return storage.ClickHouse }
func (clickHouseDialect) Placeholder() sqrl.PlaceholderFormat { return sqrl.Question }
func (clickHouseDialect) Quote(ident string) string           { return ansiQuote(ident) }

func (clickHouseDialect) Catalog(pattern string) sqrl.SelectBuilder {
	return sqrl.Select("name").
		From("system.tables").
		Where("database = currentDatabase()").
		Where(sqrl.Like{"name": pattern}).
		OrderBy("name")
}

func (d clickHouseDialect) Sum(col string) string {
	return fmt.Sprintf("toFloat64(ifNull(sum(%s), 0))", d.Quote(col))
}

func (d clickHouseDialect) CountDistinct(col string) string {
	return fmt.Sprintf("uniqExact(%s)", d.Quote(col))
}

// Both CASE branches may be evaluated, so the denominator is never zero here.
func (clickHouseDialect) Divide(num, den string) string {
	return fmt.Sprintf("%s / if(%s > 0, %s, 1)", num, den, den)
}

func (clickHouseDialect) Fixed2(expr string) string {
	return fmt.Sprintf("toDecimalString(%s, 2)", expr)
}

// Output aliases reuse the source column names; without this setting
// ClickHouse would resolve "Kills" inside later sums to the aliased aggregate.
func (clickHouseDialect) QuerySettings() string {
	return "SETTINGS prefer_column_name_to_alias = 1"
}

func (d clickHouseDialect) CreateGameTable(table string) string {
	return gameTableDDL(d, table, "String", "Int64", " ENGINE = MergeTree ORDER BY tuple()")
}
