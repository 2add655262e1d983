package logic

import (
	"errors"
	"fmt"

	"github.com/halorec/league-stats/internal/models"
)

// ErrNoTables is matched by every NoTablesFoundError.
var ErrNoTables = errors.New("no game tables found")

// NoTablesFoundError reports a scope that resolved to zero per-game tables.
type NoTablesFoundError struct {
	Scope models.Scope
}

func (e *NoTablesFoundError) Error() string {
	return fmt.Sprintf("%s for %s", ErrNoTables.Error(), e.Scope)
}

func (e *NoTablesFoundError) Unwrap() error { return ErrNoTables }
