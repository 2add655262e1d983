package logic

import (
	"context"

	"github.com/halorec/league-stats/internal/models"
	"github.com/halorec/league-stats/internal/storage"
)

// Querier runs a read query against the store. storage.Store satisfies it.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (storage.Rows, error)
}

// TableLocator discovers the per-game tables of a scope.
type TableLocator interface {
	FindTables(ctx context.Context, scope models.Scope) ([]models.GameTable, error)
}

// LeagueStatsService is what the HTTP layer consumes.
type LeagueStatsService interface {
	FindTables(ctx context.Context, scope models.Scope) ([]models.GameTable, error)
	BuildQuery(ctx context.Context, scope models.Scope) (string, error)
	GetPlayerStats(ctx context.Context, scope models.Scope) ([]models.AggregateStatRow, error)
	ListMatches(ctx context.Context) ([]int, error)
}

// Roster supplies the player allow-list applied before display.
type Roster interface {
	Players(ctx context.Context) ([]string, error)
}
