package driven

import (
	"context"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// SessionSource loads the raw session export.
type SessionSource interface {
	// Load reads the single-sheet export at path into raw rows keyed
	// by column header. It validates that domain.ExpectedColumns is a
	// subset of the headers present and returns
	// domain.ErrMissingColumns naming every absent header otherwise.
	// Extra columns are carried through and ignored downstream.
	Load(ctx context.Context, path string) ([]domain.RawRow, error)
}
