package logic

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/halorec/league-stats/internal/storage"
)

// MockRows serves a fixed list of single-column string rows.
type MockRows struct {
	Names  []string
	idx    int
	Closed bool
	ErrVal error
}

func (m *MockRows) Next() bool {
	if m.idx < len(m.Names) {
		m.idx++
		return true
	}
	return false
}

func (m *MockRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return fmt.Errorf("mock rows scan: want 1 dest, got %d", len(dest))
	}
	p, ok := dest[0].(*string)
	if !ok {
		return fmt.Errorf("mock rows scan: dest is %T", dest[0])
	}
	*p = m.Names[m.idx-1]
	return nil
}

func (m *MockRows) Err() error   { return m.ErrVal }
func (m *MockRows) Close() error { m.Closed = true; return nil }

// MockQuerier records every query and answers with QueryFunc.
type MockQuerier struct {
	QueryFunc func(ctx context.Context, query string, args ...any) (storage.Rows, error)
	Queries   []string
	Args      [][]any
}

func (m *MockQuerier) Query(ctx context.Context, query string, args ...any) (storage.Rows, error) {
	m.Queries = append(m.Queries, query)
	m.Args = append(m.Args, args)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, args...)
	}
	return &MockRows{}, nil
}

// MockRedis answers SMembers with a fixed set or error.
type MockRedis struct {
	Members []string
	Err     error
	Keys    []string
}

func (m *MockRedis) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	m.Keys = append(m.Keys, key)
	cmd := redis.NewStringSliceCmd(ctx, "smembers", key)
	if m.Err != nil {
		cmd.SetErr(m.Err)
		return cmd
	}
	cmd.SetVal(m.Members)
	return cmd
}
