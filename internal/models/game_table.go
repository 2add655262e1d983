package models

import (
	"fmt"
	"regexp"
	"strconv"
)

var gameTableRe = regexp.MustCompile(`^match(\d{2,})_game(\w+)$`)

// GameTable is a validated per-game results table name (match<MM>_game<*>).
// Only names that went through ParseGameTable are interpolated into SQL.
type GameTable struct {
	Name  string `json:"name"`
	Match int    `json:"match"`
	Game  string `json:"game"`
}

// ParseGameTable validates a catalog name against the naming convention.
func ParseGameTable(name string) (GameTable, error) {
	m := gameTableRe.FindStringSubmatch(name)
	if m == nil {
		return GameTable{}, fmt.Errorf("table name %q does not match match<NN>_game<id>", name)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return GameTable{}, fmt.Errorf("table name %q: %w", name, err)
	}
	return GameTable{Name: name, Match: n, Game: m[2]}, nil
}

// InScope reports whether the table belongs to the scope.
func (t GameTable) InScope(s Scope) bool {
	return s.IsAll() || t.Match == s.Match
}

// GameTableName builds the conventional name for a match and game index.
func GameTableName(match, game int) string {
	return fmt.Sprintf("match%02d_game%d", match, game)
}
