package executor

import (
	"context"
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

// SplitLine tokenizes a command line with POSIX word-splitting rules:
// whitespace-delimited and quote-aware. Shell metacharacters carry no
// meaning here; `;` or `|` inside a token stays a literal token.
func SplitLine(line string) ([]string, error) {
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split command %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return argv, nil
}

// RunLine tokenizes line and hands the argument vector to exec.
func RunLine(ctx context.Context, exec Executor, line string) (string, error) {
	argv, err := SplitLine(line)
	if err != nil {
		return "", err
	}
	return exec.Run(ctx, argv)
}
