// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minfill/config"
	"github.com/katalvlaran/minfill/graphio"
	"github.com/katalvlaran/minfill/solver"
)

const square = "# C4\na b\nb c\n\nc d\nd a\n"

// execute runs the CLI with args and stdin, isolated from MINFILL_* and
// any minfill.yaml in the working directory.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, env := range []string{
		config.EnvGrowth, config.EnvMaxCycleLength, config.EnvUpperBound,
		config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(env, "")
	}
	if len(args) > 0 && args[0] == "solve" && !hasFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}

	return false
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "minfill v"+version+" ("+commit+")\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := execute(t, square, "solve")
	require.NoError(t, err)
	assert.Contains(t, []string{"a c\n", "b d\n"}, out)
}

func TestSolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c5.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n2 3\n3 4\n4 5\n5 1\n"), 0o600))

	out, _, err := execute(t, "", "solve", path)
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)
}

func TestSolve_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "solve", filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := execute(t, square, "solve", "--format", "json")
	require.NoError(t, err)

	var rep graphio.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.Vertices)
	assert.Equal(t, 4, rep.Edges)
	assert.Equal(t, 1, rep.Cost)
	assert.Len(t, rep.Fill, 1)
}

func TestSolve_ChordalPrintsNothing(t *testing.T) {
	out, _, err := execute(t, "a b\nb c\nc a\nc d\n", "solve")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSolve_UpperBound(t *testing.T) {
	_, _, err := execute(t, square, "solve", "--upper-bound", "0")
	require.ErrorIs(t, err, solver.ErrInfeasible)

	out, _, err := execute(t, square, "solve", "--upper-bound", "1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSolve_LogLevel(t *testing.T) {
	_, stderr, err := execute(t, square, "solve", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=solved")

	_, stderr, err = execute(t, square, "solve")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "a b c\n", "solve")
	require.ErrorIs(t, err, graphio.ErrMalformedLine)

	_, _, err = execute(t, square, "solve", "--format", "xml")
	require.Error(t, err)

	_, _, err = execute(t, square, "solve", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, square, "solve", "--upper-bound", "-3")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minfill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  upper_bound: 0\n"), 0o600))

	_, _, err := execute(t, square, "solve", "--config", path)
	require.ErrorIs(t, err, solver.ErrInfeasible)

	_, _, err = execute(t, square, "solve", "--config", path, "--upper-bound", "-1")
	require.NoError(t, err)
}

func TestGen(t *testing.T) {
	tests := []struct {
		args  []string
		edges int
	}{
		{[]string{"gen", "cycle", "--n", "5"}, 5},
		{[]string{"gen", "path", "--n", "4"}, 3},
		{[]string{"gen", "complete", "--n", "4"}, 6},
		{[]string{"gen", "wheel", "--n", "5"}, 8},
		{[]string{"gen", "grid", "--rows", "2", "--cols", "3"}, 7},
		{[]string{"gen", "tree", "--n", "9"}, 8},
		{[]string{"gen", "random", "--n", "6", "--p", "1"}, 15},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args[1:], " "), func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Len(t, lines(out), tc.edges)
		})
	}
}

func TestGen_Errors(t *testing.T) {
	_, _, err := execute(t, "", "gen", "hypercube")
	require.Error(t, err)

	_, _, err = execute(t, "", "gen")
	require.Error(t, err)

	_, _, err = execute(t, "", "gen", "cycle", "--n", "2")
	require.Error(t, err)
}

func TestGen_Deterministic(t *testing.T) {
	a, _, err := execute(t, "", "gen", "chordal-minus", "--n", "15", "--k", "3", "--seed", "9")
	require.NoError(t, err)
	b, _, err := execute(t, "", "gen", "chordal-minus", "--n", "15", "--k", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenThenSolve(t *testing.T) {
	edges, _, err := execute(t, "", "gen", "chordal-minus", "--n", "20", "--k", "3", "--seed", "4")
	require.NoError(t, err)

	out, _, err := execute(t, edges, "solve", "--format", "json")
	require.NoError(t, err)
	var rep graphio.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.LessOrEqual(t, rep.Cost, 3)
}
