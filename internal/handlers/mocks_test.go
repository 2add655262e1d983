package handlers

import (
	"context"

	"github.com/halorec/league-stats/internal/models"
)

// MockStatsService
type MockStatsService struct {
	FindTablesFunc     func(ctx context.Context, scope models.Scope) ([]models.GameTable, error)
	BuildQueryFunc     func(ctx context.Context, scope models.Scope) (string, error)
	GetPlayerStatsFunc func(ctx context.Context, scope models.Scope) ([]models.AggregateStatRow, error)
	ListMatchesFunc    func(ctx context.Context) ([]int, error)
}

func (m *MockStatsService) FindTables(ctx context.Context, scope models.Scope) ([]models.GameTable, error) {
	if m.FindTablesFunc != nil {
		return m.FindTablesFunc(ctx, scope)
	}
	return nil, nil
}

func (m *MockStatsService) BuildQuery(ctx context.Context, scope models.Scope) (string, error) {
	if m.BuildQueryFunc != nil {
		return m.BuildQueryFunc(ctx, scope)
	}
	return "SELECT 1", nil
}

func (m *MockStatsService) GetPlayerStats(ctx context.Context, scope models.Scope) ([]models.AggregateStatRow, error) {
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(ctx, scope)
	}
	return []models.AggregateStatRow{}, nil
}

func (m *MockStatsService) ListMatches(ctx context.Context) ([]int, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return []int{}, nil
}

// MockRoster
type MockRoster struct {
	PlayersFunc func(ctx context.Context) ([]string, error)
}

func (m *MockRoster) Players(ctx context.Context) ([]string, error) {
	if m.PlayersFunc != nil {
		return m.PlayersFunc(ctx)
	}
	return nil, nil
}
