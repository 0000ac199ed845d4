package solver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
	"github.com/GamesCrafters/gamesman-gateway/internal/infra/executor"
)

type ExecSolver struct {
	Exec    executor.Executor
	Binary  string        // path of the gamesman binary
	Timeout time.Duration // per-invocation bound; 0 means unbounded
}

func NewExecSolver(exec executor.Executor) *ExecSolver {
	binary := os.Getenv("GAMESMAN_BIN")
	if binary == "" {
		binary = domain.DefaultSolverPath
	}
	return &ExecSolver{Exec: exec, Binary: binary, Timeout: domain.DefaultSolverTimeout}
}

func (s *ExecSolver) GetStart(ctx context.Context, q domain.Query) (string, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return executor.RunLine(ctx, s.Exec, BuildGetStartCommand(s.Binary, q))
}

func (s *ExecSolver) QueryPosition(ctx context.Context, q domain.Query) (string, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return executor.RunLine(ctx, s.Exec, BuildQueryCommand(s.Binary, q))
}

func (s *ExecSolver) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.Timeout)
}

// BuildGetStartCommand interpolates the path segments verbatim into the
// getstart command line. No escaping, no validation of segment content.
func BuildGetStartCommand(binary string, q domain.Query) string {
	return fmt.Sprintf("%s %s %s %s", binary, domain.GetStartSubcommand, q.Game, q.Variant)
}

// BuildQueryCommand interpolates the path segments into the query command
// line. The `--` sentinel directly precedes the positionals so a position
// beginning with a dash is never read as a flag by the solver.
func BuildQueryCommand(binary string, q domain.Query) string {
	return fmt.Sprintf("%s %s -- %s %s %s", binary, domain.QuerySubcommand, q.Game, q.Variant, q.Position)
}
