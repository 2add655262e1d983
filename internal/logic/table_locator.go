package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/halorec/league-stats/internal/models"
)

type tableLocator struct {
	db      Querier
	dialect Dialect
	logger  *zap.SugaredLogger
}

// NewTableLocator returns a locator that reads the store's schema catalog.
func NewTableLocator(db Querier, dialect Dialect, logger *zap.Logger) TableLocator {
	return &tableLocator{db: db, dialect: dialect, logger: logger.Sugar()}
}

// FindTables lists the scope's per-game tables in catalog order. An empty
// result is not an error. Names that fail validation are skipped.
func (l *tableLocator) FindTables(ctx context.Context, scope models.Scope) ([]models.GameTable, error) {
	query, args, err := l.dialect.Catalog(scope.TablePattern()).
		PlaceholderFormat(l.dialect.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building catalog query: %w", err)
	}

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying table catalog: %w", err)
	}
	defer rows.Close()

	tables := make([]models.GameTable, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		table, err := models.ParseGameTable(name)
		if err != nil {
			tablesSkipped.Inc()
			l.logger.Warnw("Skipping table with unexpected name", "table", name, "error", err)
			continue
		}
		if !table.InScope(scope) {
			tablesSkipped.Inc()
			l.logger.Warnw("Skipping table outside requested scope", "table", name, "scope", scope.String())
			continue
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table catalog: %w", err)
	}

	tablesDiscovered.Observe(float64(len(tables)))
	return tables, nil
}
