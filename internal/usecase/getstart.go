package usecase

import (
	"context"

	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
	"github.com/GamesCrafters/gamesman-gateway/internal/ports"
)

// GetStart resolves the starting position of a game variant. The returned
// body follows the gateway contract: solver stdout, or the pseudo-JSON
// error body when the solver exits non-zero.
func GetStart(ctx context.Context, solver ports.SolverPort, q domain.Query) (string, error) {
	out, err := solver.GetStart(ctx, q)
	return respond(out, err)
}
