package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/halorec/league-stats/internal/logic"
)

// Pinger is a dependency checked by the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type Config struct {
	Stats  logic.LeagueStatsService
	Roster logic.Roster
	// Dependencies reported by /ready, keyed by name.
	Checks   map[string]Pinger
	Logger   *zap.Logger
	Title    string
	PageSize int
	// ExposeSQL enables GET /api/v1/stats/query.
	ExposeSQL bool
}

type Handler struct {
	stats     logic.LeagueStatsService
	roster    logic.Roster
	checks    map[string]Pinger
	logger    *zap.SugaredLogger
	validator *validator.Validate
	title     string
	pageSize  int
	exposeSQL bool
}

func New(cfg Config) *Handler {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	roster := cfg.Roster
	if roster == nil {
		roster = logic.StaticRoster(nil)
	}
	return &Handler{
		stats:     cfg.Stats,
		roster:    roster,
		checks:    cfg.Checks,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		title:     cfg.Title,
		pageSize:  pageSize,
		exposeSQL: cfg.ExposeSQL,
	}
}
