package models

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Column names of the per-game result tables and of the aggregate result.
const (
	ColPlayer         = "Player"
	ColMatchID        = "MatchId"
	ColKills          = "Kills"
	ColDeaths         = "Deaths"
	ColAssists        = "Assists"
	ColDamageDone     = "DamageDone"
	ColDamageTaken    = "DamageTaken"
	ColShotsFired     = "ShotsFired"
	ColShotsLanded    = "ShotsLanded"
	ColKD             = "KD"
	ColKDA            = "KDA"
	ColAccuracy       = "Accuracy"
	ColAvgKills       = "AvgKills"
	ColAvgAssists     = "AvgAssists"
	ColAvgDeaths      = "AvgDeaths"
	ColAvgDamageDone  = "AvgDamageDone"
	ColAvgDamageTaken = "AvgDamageTaken"
)

// ZeroRatio is what every guarded ratio reads when its denominator is zero.
const ZeroRatio = "0.00"

// GameResultRow is one player's line in one game table.
type GameResultRow struct {
	Player      string  `json:"Player"`
	MatchID     int     `json:"MatchId"`
	Kills       float64 `json:"Kills"`
	Deaths      float64 `json:"Deaths"`
	Assists     float64 `json:"Assists"`
	DamageDone  float64 `json:"DamageDone"`
	DamageTaken float64 `json:"DamageTaken"`
	ShotsFired  float64 `json:"ShotsFired"`
	ShotsLanded float64 `json:"ShotsLanded"`
}

// GameResultColumns lists the per-game table columns in storage order.
var GameResultColumns = []string{
	ColPlayer, ColMatchID, ColKills, ColDeaths, ColAssists,
	ColDamageDone, ColDamageTaken, ColShotsFired, ColShotsLanded,
}

// Values returns the row in GameResultColumns order. Whole numbers are sent
// as int64 so they bind to integer columns.
func (r GameResultRow) Values() []interface{} {
	return []interface{}{
		r.Player, r.MatchID, num(r.Kills), num(r.Deaths), num(r.Assists),
		num(r.DamageDone), num(r.DamageTaken), num(r.ShotsFired), num(r.ShotsLanded),
	}
}

func num(f float64) interface{} {
	if f == math.Trunc(f) {
		return int64(f)
	}
	return f
}

// AggregateStatRow is one player's totals across a scope. Ratio and average
// fields are preformatted with two decimals by the store.
type AggregateStatRow struct {
	Player         string  `json:"Player"`
	Kills          float64 `json:"Kills"`
	Deaths         float64 `json:"Deaths"`
	Assists        float64 `json:"Assists"`
	DamageDone     float64 `json:"DamageDone"`
	DamageTaken    float64 `json:"DamageTaken"`
	KD             string  `json:"KD"`
	KDA            string  `json:"KDA"`
	ShotsFired     float64 `json:"ShotsFired"`
	ShotsLanded    float64 `json:"ShotsLanded"`
	Accuracy       string  `json:"Accuracy"`
	AvgKills       string  `json:"AvgKills"`
	AvgAssists     string  `json:"AvgAssists"`
	AvgDeaths      string  `json:"AvgDeaths"`
	AvgDamageDone  string  `json:"AvgDamageDone"`
	AvgDamageTaken string  `json:"AvgDamageTaken"`
}

// AggregateColumns is the select order of the aggregate query and the table column order.
var AggregateColumns = []string{
	ColPlayer, ColKills, ColDeaths, ColAssists, ColDamageDone, ColDamageTaken,
	ColKD, ColKDA, ColShotsFired, ColShotsLanded, ColAccuracy,
	ColAvgKills, ColAvgAssists, ColAvgDeaths, ColAvgDamageDone, ColAvgDamageTaken,
}

// ScanTargets returns pointers in AggregateColumns order.
func (r *AggregateStatRow) ScanTargets() []interface{} {
	return []interface{}{
		&r.Player, &r.Kills, &r.Deaths, &r.Assists, &r.DamageDone, &r.DamageTaken,
		&r.KD, &r.KDA, &r.ShotsFired, &r.ShotsLanded, &r.Accuracy,
		&r.AvgKills, &r.AvgAssists, &r.AvgDeaths, &r.AvgDamageDone, &r.AvgDamageTaken,
	}
}

// sortKey returns either a numeric or a textual key for a column.
func (r *AggregateStatRow) sortKey(column string) (float64, string, bool) {
	switch column {
	case ColPlayer:
		return 0, r.Player, true
	case ColKills:
		return r.Kills, "", true
	case ColDeaths:
		return r.Deaths, "", true
	case ColAssists:
		return r.Assists, "", true
	case ColDamageDone:
		return r.DamageDone, "", true
	case ColDamageTaken:
		return r.DamageTaken, "", true
	case ColShotsFired:
		return r.ShotsFired, "", true
	case ColShotsLanded:
		return r.ShotsLanded, "", true
	case ColKD:
		return parseRatio(r.KD), "", true
	case ColKDA:
		return parseRatio(r.KDA), "", true
	case ColAccuracy:
		return parseRatio(r.Accuracy), "", true
	case ColAvgKills:
		return parseRatio(r.AvgKills), "", true
	case ColAvgAssists:
		return parseRatio(r.AvgAssists), "", true
	case ColAvgDeaths:
		return parseRatio(r.AvgDeaths), "", true
	case ColAvgDamageDone:
		return parseRatio(r.AvgDamageDone), "", true
	case ColAvgDamageTaken:
		return parseRatio(r.AvgDamageTaken), "", true
	}
	return 0, "", false
}

func parseRatio(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FilterPlayers keeps rows whose player is in the allow-list, preserving order.
// An empty allow-list keeps every row.
func FilterPlayers(rows []AggregateStatRow, allow []string) []AggregateStatRow {
	if len(allow) == 0 {
		return rows
	}
	allowed := make(map[string]struct{}, len(allow))
	for _, p := range allow {
		allowed[p] = struct{}{}
	}
	out := make([]AggregateStatRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := allowed[r.Player]; ok {
			out = append(out, r)
		}
	}
	return out
}

// SortRows sorts in place by column. Ratio columns compare numerically; ties
// fall back to player name so the order is stable across requests.
func SortRows(rows []AggregateStatRow, column string, desc bool) error {
	var probe AggregateStatRow
	if _, _, ok := probe.sortKey(column); !ok {
		return fmt.Errorf("unknown sort column: %s", column)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ni, si, _ := rows[i].sortKey(column)
		nj, sj, _ := rows[j].sortKey(column)
		if column == ColPlayer {
			if desc {
				return si > sj
			}
			return si < sj
		}
		if ni != nj {
			if desc {
				return ni > nj
			}
			return ni < nj
		}
		return rows[i].Player < rows[j].Player
	})
	return nil
}

// Page is one page of the stats table.
type Page struct {
	Rows       []AggregateStatRow `json:"rows"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalRows  int                `json:"total_rows"`
	TotalPages int                `json:"total_pages"`
}

// Paginate slices rows into zero-indexed pages. Pages past the end are empty.
func Paginate(rows []AggregateStatRow, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = len(rows)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	if page < 0 {
		page = 0
	}
	total := len(rows)
	p := Page{
		Rows:       []AggregateStatRow{},
		Page:       page,
		PageSize:   pageSize,
		TotalRows:  total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
	// Checked before multiplying so a huge page cannot overflow.
	if total == 0 || page > (total-1)/pageSize {
		return p
	}
	start := page * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	p.Rows = rows[start:end]
	return p
}
