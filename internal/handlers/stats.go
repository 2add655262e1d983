package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/halorec/league-stats/internal/logic"
	"github.com/halorec/league-stats/internal/models"
)

const (
	defaultSort  = models.ColKills
	defaultOrder = "desc"
)

// parseStatsRequest reads and validates the table query parameters.
func (h *Handler) parseStatsRequest(r *http.Request) (models.StatsRequest, error) {
	q := r.URL.Query()
	req := models.StatsRequest{
		Scope:    q.Get("scope"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
		PageSize: h.pageSize,
	}
	if p := q.Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return req, fmt.Errorf("invalid page: %s", p)
		}
		req.Page = parsed
	}
	if ps := q.Get("page_size"); ps != "" {
		parsed, err := strconv.Atoi(ps)
		if err != nil {
			return req, fmt.Errorf("invalid page_size: %s", ps)
		}
		req.PageSize = parsed
	}
	if err := h.validator.Struct(req); err != nil {
		return req, err
	}
	if req.Sort == "" {
		req.Sort = defaultSort
	}
	if req.Order == "" {
		req.Order = defaultOrder
	}
	if req.PageSize == 0 {
		req.PageSize = h.pageSize
	}
	return req, nil
}

// statsPage runs the aggregate for a scope, then filters to the roster, sorts
// and paginates.
func (h *Handler) statsPage(ctx context.Context, scope models.Scope, req models.StatsRequest) (*models.StatsResponse, error) {
	rows, err := h.stats.GetPlayerStats(ctx, scope)
	if err != nil {
		return nil, err
	}
	players, err := h.roster.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	rows = models.FilterPlayers(rows, players)
	if err := models.SortRows(rows, req.Sort, req.Order == "desc"); err != nil {
		return nil, err
	}

	return &models.StatsResponse{
		Scope:   scope.Label(),
		Columns: models.AggregateColumns,
		Sort:    req.Sort,
		Order:   req.Order,
		Page:    models.Paginate(rows, req.Page, req.PageSize),
	}, nil
}

// GetStats returns the aggregated player table for a scope
// @Summary Player stats table
// @Description Per-player totals, ratios and per-match averages for all matches or one match
// @Tags Stats
// @Produce json
// @Param scope query string false "All or Match #NN" default(All)
// @Param sort query string false "Column to sort by" default(Kills)
// @Param order query string false "asc or desc" default(desc)
// @Param page query int false "Zero-based page" default(0)
// @Param page_size query int false "Rows per page" default(10)
// @Success 200 {object} models.StatsResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "No game tables for scope"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseStatsRequest(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	scope, err := models.ParseScope(req.Scope)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.statsPage(r.Context(), scope, req)
	if err != nil {
		h.statsError(w, scope, err)
		return
	}
	resp.Title = h.title
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetMatches returns the scope dropdown options
// @Summary Scope options
// @Tags Stats
// @Produce json
// @Success 200 {object} models.MatchOptions
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /matches [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.stats.ListMatches(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list matches", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Query failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.MatchOptions{
		Options: logic.ScopeOptions(matches),
		Matches: matches,
	})
}

// GetQuery returns the generated aggregate SQL for a scope
// @Summary Generated SQL
// @Tags Stats
// @Produce json
// @Param scope query string false "All or Match #NN" default(All)
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "No game tables for scope"
// @Router /stats/query [get]
func (h *Handler) GetQuery(w http.ResponseWriter, r *http.Request) {
	if !h.exposeSQL {
		h.errorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	scope, err := models.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	query, err := h.stats.BuildQuery(r.Context(), scope)
	if err != nil {
		h.statsError(w, scope, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{
		"scope": scope.Label(),
		"sql":   query,
	})
}

// GetDashboard returns title, scope options and the first table page in one call
// @Summary Dashboard bootstrap
// @Tags Stats
// @Produce json
// @Param scope query string false "All or Match #NN" default(All)
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseStatsRequest(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	scope, err := models.ParseScope(req.Scope)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	dash := models.Dashboard{
		Title:    h.title,
		Selected: scope.Label(),
	}

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		matches, err := h.stats.ListMatches(ctx)
		if err != nil {
			return fmt.Errorf("listing matches: %w", err)
		}
		dash.Options = logic.ScopeOptions(matches)
		return nil
	})

	g.Go(func() error {
		resp, err := h.statsPage(ctx, scope, req)
		if errors.Is(err, logic.ErrNoTables) {
			// An empty scope renders as an empty table with a notice.
			dash.Notice = err.Error()
			dash.Stats = models.StatsResponse{
				Scope:   scope.Label(),
				Columns: models.AggregateColumns,
				Sort:    req.Sort,
				Order:   req.Order,
				Page:    models.Paginate(nil, 0, req.PageSize),
			}
			return nil
		}
		if err != nil {
			return err
		}
		dash.Stats = *resp
		return nil
	})

	if err := g.Wait(); err != nil {
		h.logger.Errorw("Failed to build dashboard", "scope", scope.String(), "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Query failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, dash)
}

func (h *Handler) statsError(w http.ResponseWriter, scope models.Scope, err error) {
	if errors.Is(err, logic.ErrNoTables) {
		h.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Errorw("Failed to load stats", "scope", scope.String(), "error", err)
	h.errorResponse(w, http.StatusInternalServerError, "Query failed")
}
