package logic

import (
	"context"
	"fmt"

	sqrl "github.com/Masterminds/squirrel"

	"github.com/halorec/league-stats/internal/models"
)

// combinedAlias names the UNION ALL relation the aggregates read from.
const combinedAlias = "combined_stats"

// safeRatio renders numerator/denominator as a two-decimal string, or '0.00'
// when the denominator is not positive. All eight ratio and average columns
// go through here.
func safeRatio(d Dialect, num, den string) string {
	return fmt.Sprintf("CASE WHEN %s > 0 THEN %s ELSE '%s' END",
		den, d.Fixed2(d.Divide(num, den)), models.ZeroRatio)
}

// aggregateColumns returns the select list in models.AggregateColumns order.
func aggregateColumns(d Dialect) []string {
	as := func(expr, name string) string { return expr + " AS " + d.Quote(name) }

	kills := d.Sum(models.ColKills)
	deaths := d.Sum(models.ColDeaths)
	assists := d.Sum(models.ColAssists)
	damageDone := d.Sum(models.ColDamageDone)
	damageTaken := d.Sum(models.ColDamageTaken)
	shotsFired := d.Sum(models.ColShotsFired)
	shotsLanded := d.Sum(models.ColShotsLanded)
	matches := d.CountDistinct(models.ColMatchID)

	return []string{
		d.Quote(models.ColPlayer),
		as(kills, models.ColKills),
		as(deaths, models.ColDeaths),
		as(assists, models.ColAssists),
		as(damageDone, models.ColDamageDone),
		as(damageTaken, models.ColDamageTaken),
		as(safeRatio(d, kills, deaths), models.ColKD),
		as(safeRatio(d, "("+kills+" + "+assists+")", deaths), models.ColKDA),
		as(shotsFired, models.ColShotsFired),
		as(shotsLanded, models.ColShotsLanded),
		as(safeRatio(d, shotsLanded, shotsFired), models.ColAccuracy),
		as(safeRatio(d, kills, matches), models.ColAvgKills),
		as(safeRatio(d, assists, matches), models.ColAvgAssists),
		as(safeRatio(d, deaths, matches), models.ColAvgDeaths),
		as(safeRatio(d, damageDone, matches), models.ColAvgDamageDone),
		as(safeRatio(d, damageTaken, matches), models.ColAvgDamageTaken),
	}
}

// AggregateQuery builds the per-player aggregate over the union of tables.
// Every table must share the GameResultRow column layout. Rows without a
// player are dropped and NULL counters add nothing.
func AggregateQuery(d Dialect, tables []models.GameTable) (string, error) {
	if len(tables) == 0 {
		return "", ErrNoTables
	}

	combined := sqrl.Select("*").From(d.Quote(tables[0].Name))
	for _, t := range tables[1:] {
		combined = combined.Suffix("UNION ALL SELECT * FROM " + d.Quote(t.Name))
	}

	q := sqrl.Select(aggregateColumns(d)...).
		FromSelect(combined, combinedAlias).
		Where(d.Quote(models.ColPlayer) + " IS NOT NULL").
		GroupBy(d.Quote(models.ColPlayer)).
		PlaceholderFormat(d.Placeholder())
	if settings := d.QuerySettings(); settings != "" {
		q = q.Suffix(settings)
	}

	query, _, err := q.ToSql()
	if err != nil {
		return "", fmt.Errorf("building aggregate query: %w", err)
	}
	return query, nil
}

// BuildQuery locates the scope's tables and returns the aggregate query text.
func (s *leagueStatsService) BuildQuery(ctx context.Context, scope models.Scope) (string, error) {
	tables, err := s.locator.FindTables(ctx, scope)
	if err != nil {
		return "", err
	}
	if len(tables) == 0 {
		noTablesFound.Inc()
		return "", &NoTablesFoundError{Scope: scope}
	}
	return AggregateQuery(s.dialect, tables)
}
