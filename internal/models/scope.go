package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Scope selects which per-game tables are aggregated. The zero value means all matches.
type Scope struct {
	Match int `json:"match,omitempty"`
}

// AllMatches returns the scope covering every match.
func AllMatches() Scope { return Scope{} }

// ForMatch returns the scope of a single numbered match.
func ForMatch(n int) Scope { return Scope{Match: n} }

func (s Scope) IsAll() bool { return s.Match <= 0 }

// String is used in error messages and logs: "all matches" or "match 02".
func (s Scope) String() string {
	if s.IsAll() {
		return "all matches"
	}
	return fmt.Sprintf("match %02d", s.Match)
}

// Label is the dropdown value for the scope.
func (s Scope) Label() string {
	if s.IsAll() {
		return ScopeAllLabel
	}
	return fmt.Sprintf("Match #%02d", s.Match)
}

// TablePattern is the catalog LIKE pattern for the scope. Underscores are escaped
// so they match literally.
func (s Scope) TablePattern() string {
	if s.IsAll() {
		return `match%\_game%`
	}
	return fmt.Sprintf(`match%02d\_game%%`, s.Match)
}

const ScopeAllLabel = "All"

var matchLabelRe = regexp.MustCompile(`(?i)^match\s*#?\s*(\d+)$`)

// ParseScope accepts "All" (or empty), "Match #NN" and bare match numbers.
func ParseScope(value string) (Scope, error) {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, ScopeAllLabel) {
		return AllMatches(), nil
	}

	digits := v
	if m := matchLabelRe.FindStringSubmatch(v); m != nil {
		digits = m[1]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Scope{}, fmt.Errorf("invalid scope %q", value)
	}
	if n <= 0 {
		return Scope{}, fmt.Errorf("invalid scope %q: match number must be positive", value)
	}
	return ForMatch(n), nil
}
