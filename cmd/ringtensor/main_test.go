package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ringtensor/internal/parallel"
	"github.com/born-ml/ringtensor/tensor"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := parallel.Default()
	t.Cleanup(func() { parallel.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ringtensor "+version))
}

func TestEinsumCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "matmul",
			args: []string{"einsum", "ij,jk->ik", "-o", "[[1,2],[3,4]]", "-o", "[[5,6],[7,8]]"},
			want: "[[19,22],[43,50]]",
		},
		{
			name: "trace",
			args: []string{"einsum", "ii", "-o", "[[1,2],[3,4]]"},
			want: "5",
		},
		{
			name: "outer",
			args: []string{"einsum", "i,j", "--operand", "[1,2]", "--operand", "[3,4,5]"},
			want: "[[3,4,5],[6,8,10]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestEinsumCommand_Errors(t *testing.T) {
	_, _, err := run(t, "einsum", "ij,jk->ik", "-o", "[[1,2],[3,4]]", "-o", "[[1,2,3]]")
	assert.ErrorIs(t, err, tensor.ErrDimensionConflict)

	_, _, err = run(t, "einsum", "ij,jk->ik", "-o", "[[1,2],[3,4]]")
	assert.ErrorIs(t, err, tensor.ErrInvalidEquation)

	_, _, err = run(t, "einsum", "i", "-o", "[[1,2],[3]]")
	assert.ErrorIs(t, err, errRagged)

	_, _, err = run(t, "einsum", "i", "-o", "[]")
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestSumCommand(t *testing.T) {
	out, _, err := run(t, "sum", "[[1,2],[3,4]]")
	require.NoError(t, err)
	assert.Equal(t, "10", strings.TrimSpace(out))

	out, _, err = run(t, "sum", "[[1,2,3],[4,5,6]]", "--axis", "1")
	require.NoError(t, err)
	assert.Equal(t, "[6,15]", strings.TrimSpace(out))

	out, _, err = run(t, "sum", "[1,2,3]", "--axis", "0")
	require.NoError(t, err)
	assert.Equal(t, "6", strings.TrimSpace(out))

	_, _, err = run(t, "sum", "[1,2,3]", "--axis", "1")
	assert.ErrorIs(t, err, tensor.ErrInvalidAxis)
}

func TestGlobalFlags(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--workers", "3", "--threshold", "50", "sum", "[1,2]")
	require.NoError(t, err)
	assert.Contains(t, stderr, "parallel policy configured")

	cfg := parallel.Default()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.NumWorkers)
	assert.Equal(t, 50, cfg.Threshold)

	_, _, err = run(t, "--log-level", "loud", "version")
	assert.Error(t, err)

	_, _, err = run(t, "--workers", "0", "version")
	assert.Error(t, err)
}
