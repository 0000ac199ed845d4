package usecase

import (
	"errors"

	"github.com/GamesCrafters/gamesman-gateway/internal/infra/executor"
)

// BuildErrorBody assembles the response body for a solver that exited
// non-zero. Literal concatenation, not a JSON encoder: quotes and
// backslashes inside stderr pass through unescaped, so the result is not
// guaranteed to be well-formed JSON. Upstream clients depend on this exact
// shape; do not swap in a serializer.
func BuildErrorBody(stderr string) string {
	return "{ \"error\": \"" + stderr + "\" }"
}

// respond maps a solver invocation result onto the response body contract:
// stdout verbatim on success, the pseudo-JSON error body when the solver
// itself exited non-zero. Launch failures propagate untouched.
func respond(out string, err error) (string, error) {
	if err == nil {
		return out, nil
	}
	var xe *executor.ExitError
	if errors.As(err, &xe) {
		return BuildErrorBody(xe.Stderr), nil
	}
	return "", err
}
