package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
	"github.com/GamesCrafters/gamesman-gateway/internal/infra/executor"
)

type stubSolver struct {
	out string
	err error
}

func (s stubSolver) GetStart(context.Context, domain.Query) (string, error) {
	return s.out, s.err
}

func (s stubSolver) QueryPosition(context.Context, domain.Query) (string, error) {
	return s.out, s.err
}

func TestBuildErrorBody(t *testing.T) {
	assert.Equal(t, `{ "error": "no such game" }`, BuildErrorBody("no such game"))
}

func TestBuildErrorBodyDoesNotEscape(t *testing.T) {
	// stderr containing a double quote is inserted verbatim; the result is
	// not valid JSON and that is the documented contract
	body := BuildErrorBody(`unknown game "chess2"`)
	assert.Equal(t, `{ "error": "unknown game "chess2"" }`, body)
	assert.False(t, json.Valid([]byte(body)))
}

func TestGetStartPassesStdoutVerbatim(t *testing.T) {
	body, err := GetStart(context.Background(),
		stubSolver{out: "8_---------\n"}, domain.Query{Game: "ttt", Variant: "0"})
	require.NoError(t, err)
	assert.Equal(t, "8_---------\n", body)
}

func TestQueryPositionWrapsSolverExit(t *testing.T) {
	body, err := QueryPosition(context.Background(),
		stubSolver{err: &executor.ExitError{Code: 1, Stderr: "position not found"}},
		domain.Query{Game: "ttt", Variant: "0", Position: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, `{ "error": "position not found" }`, body)
}

func TestLaunchFailurePropagates(t *testing.T) {
	boom := errors.New("fork/exec bin/gamesman: no such file or directory")
	_, err := GetStart(context.Background(), stubSolver{err: boom},
		domain.Query{Game: "ttt", Variant: "0"})
	assert.ErrorIs(t, err, boom)
}
