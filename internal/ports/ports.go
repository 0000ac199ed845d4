package ports

import (
	"context"

	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
)

// SolverPort is a hexagonal port for querying the gamesman solver binary.
type SolverPort interface {
	// GetStart returns the solver's stdout for `getstart <game> <variant>`.
	GetStart(ctx context.Context, q domain.Query) (string, error)
	// QueryPosition returns the solver's stdout for
	// `query -- <game> <variant> <position>`.
	QueryPosition(ctx context.Context, q domain.Query) (string, error)
}
