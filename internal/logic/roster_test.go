package logic

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func TestRedisRoster(t *testing.T) {
	fallback := StaticRoster{"Walrus Boots", "OgFragnetism"}

	tests := []struct {
		name    string
		client  *MockRedis
		want    []string
		wantErr bool
	}{
		{
			name:   "Set members sorted",
			client: &MockRedis{Members: []string{"ZOMBIE IC", "Slimbo TDS"}},
			want:   []string{"Slimbo TDS", "ZOMBIE IC"},
		},
		{
			name:   "Empty set uses fallback",
			client: &MockRedis{Members: []string{}},
			want:   []string{"Walrus Boots", "OgFragnetism"},
		},
		{
			name:   "Missing key uses fallback",
			client: &MockRedis{Err: redis.Nil},
			want:   []string{"Walrus Boots", "OgFragnetism"},
		},
		{
			name:    "Redis down",
			client:  &MockRedis{Err: errors.New("dial tcp: connection refused")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRedisRoster(tt.client, "league:selected_players", fallback, zap.NewNop())
			got, err := r.Players(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Players() = %v, want %v", got, tt.want)
			}
			if len(tt.client.Keys) != 1 || tt.client.Keys[0] != "league:selected_players" {
				t.Errorf("SMembers keys = %v", tt.client.Keys)
			}
		})
	}
}
