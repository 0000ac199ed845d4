package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

type Executor interface {
	Run(ctx context.Context, argv []string) (string, error)
}

// ExitError reports a child process that started but exited non-zero.
// Launch failures (binary missing, permission denied) surface as the
// underlying os/exec error instead.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return e.Stderr
}

type SubprocessExecutor struct{}

// Run executes argv directly, with no shell involved. Stdout is returned
// verbatim on exit code zero; a non-zero exit yields an *ExitError holding
// the captured stderr. A cancelled or expired ctx wins over the exec error.
func (SubprocessExecutor) Run(ctx context.Context, argv []string) (string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if xe, ok := err.(*exec.ExitError); ok {
			return "", &ExitError{Code: xe.ExitCode(), Stderr: errb.String()}
		}
		return "", err
	}
	return out.String(), nil
}

// Helper to create a timeout context
func WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
