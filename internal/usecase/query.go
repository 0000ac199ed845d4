package usecase

import (
	"context"

	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
	"github.com/GamesCrafters/gamesman-gateway/internal/ports"
)

// QueryPosition looks up one position of a game variant.
func QueryPosition(ctx context.Context, solver ports.SolverPort, q domain.Query) (string, error) {
	out, err := solver.QueryPosition(ctx, q)
	return respond(out, err)
}
