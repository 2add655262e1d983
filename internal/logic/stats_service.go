package logic

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/halorec/league-stats/internal/models"
)

type leagueStatsService struct {
	db      Querier
	dialect Dialect
	locator TableLocator
	logger  *zap.SugaredLogger
}

// NewLeagueStatsService wires the locator and query builder over one store.
// Nothing is cached between calls: every request re-reads the catalog.
func NewLeagueStatsService(db Querier, dialect Dialect, logger *zap.Logger) LeagueStatsService {
	return &leagueStatsService{
		db:      db,
		dialect: dialect,
		locator: NewTableLocator(db, dialect, logger),
		logger:  logger.Sugar(),
	}
}

func (s *leagueStatsService) FindTables(ctx context.Context, scope models.Scope) ([]models.GameTable, error) {
	return s.locator.FindTables(ctx, scope)
}

// GetPlayerStats runs the aggregate query for a scope and returns one row per
// player, unfiltered and in store order.
func (s *leagueStatsService) GetPlayerStats(ctx context.Context, scope models.Scope) ([]models.AggregateStatRow, error) {
	queryID := uuid.NewString()
	start := time.Now()
	kind := "all"
	if !scope.IsAll() {
		kind = "match"
	}

	stats, err := s.runAggregate(ctx, scope)
	statsQueryDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, ErrNoTables):
		statsQueries.WithLabelValues(kind, "no_tables").Inc()
		s.logger.Infow("No game tables for scope", "query_id", queryID, "scope", scope.String())
		return nil, err
	case err != nil:
		statsQueries.WithLabelValues(kind, "error").Inc()
		s.logger.Errorw("Aggregate stats query failed", "query_id", queryID, "scope", scope.String(), "error", err)
		return nil, err
	}

	statsQueries.WithLabelValues(kind, "ok").Inc()
	s.logger.Debugw("Aggregate stats query",
		"query_id", queryID,
		"scope", scope.String(),
		"players", len(stats),
		"duration", time.Since(start),
	)
	return stats, nil
}

func (s *leagueStatsService) runAggregate(ctx context.Context, scope models.Scope) ([]models.AggregateStatRow, error) {
	query, err := s.BuildQuery(ctx, scope)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregate query for %s: %w", scope, err)
	}
	defer rows.Close()

	stats := make([]models.AggregateStatRow, 0)
	for rows.Next() {
		var row models.AggregateStatRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("scanning aggregate row: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading aggregate rows: %w", err)
	}
	return stats, nil
}

// ListMatches returns the distinct match numbers that have at least one game
// table, ascending. It backs the scope dropdown.
func (s *leagueStatsService) ListMatches(ctx context.Context) ([]int, error) {
	tables, err := s.locator.FindTables(ctx, models.AllMatches())
	if err != nil {
		return nil, err
	}
	seen := make(map[int]struct{})
	matches := make([]int, 0)
	for _, t := range tables {
		if _, ok := seen[t.Match]; ok {
			continue
		}
		seen[t.Match] = struct{}{}
		matches = append(matches, t.Match)
	}
	sort.Ints(matches)
	return matches, nil
}

// ScopeOptions turns match numbers into dropdown labels, "All" first.
func ScopeOptions(matches []int) []string {
	opts := make([]string, 0, len(matches)+1)
	opts = append(opts, models.AllMatches().Label())
	for _, m := range matches {
		opts = append(opts, models.ForMatch(m).Label())
	}
	return opts
}
