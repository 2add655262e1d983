package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StaticRoster is a fixed allow-list.
type StaticRoster []string

func (r StaticRoster) Players(ctx context.Context) ([]string, error) {
	return []string(r), nil
}

// RedisClient is the part of the go-redis client the roster uses.
type RedisClient interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

type redisRoster struct {
	client   RedisClient
	key      string
	fallback Roster
	logger   *zap.SugaredLogger
}

// NewRedisRoster reads the allow-list from a Redis set so it can be edited
// without a restart. An empty or missing set falls back to the given roster.
func NewRedisRoster(client RedisClient, key string, fallback Roster, logger *zap.Logger) Roster {
	return &redisRoster{client: client, key: key, fallback: fallback, logger: logger.Sugar()}
}

func (r *redisRoster) Players(ctx context.Context) ([]string, error) {
	members, err := r.client.SMembers(ctx, r.key).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("reading roster set %s: %w", r.key, err)
	}
	if len(members) == 0 {
		r.logger.Debugw("Roster set empty, using fallback", "key", r.key)
		return r.fallback.Players(ctx)
	}
	sort.Strings(members)
	return members, nil
}
