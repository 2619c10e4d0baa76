package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsecret/basecode"
	"github.com/katalvlaran/lvsecret/cmd/lvsecret/cmd"
	"github.com/katalvlaran/lvsecret/config"
	"github.com/katalvlaran/lvsecret/shares"
	"github.com/katalvlaran/lvsecret/solver"
)

const goodJSON = `{
  "first": {
    "keys": {"n": 4, "k": 3},
    "1": {"base": "10", "value": "4"},
    "2": {"base": "2", "value": "1000"},
    "3": {"base": "16", "value": "e"},
    "4": {"base": "8", "value": "26"}
  },
  "second": {
    "keys": {"n": 2, "k": 2},
    "1": {"base": "10", "value": "5"},
    "2": {"base": "10", "value": "7"}
  }
}`

const badJSON = `{
  "ok": {
    "keys": {"n": 2, "k": 2},
    "1": {"base": "10", "value": "5"},
    "2": {"base": "10", "value": "7"}
  },
  "short": {
    "keys": {"n": 1, "k": 2},
    "1": {"base": "10", "value": "5"}
  }
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestSolve(t *testing.T) {
	path := writeFile(t, "tests.json", goodJSON)

	for _, m := range solver.Methods() {
		out, _, err := run(t, "solve", path, "--method", m.String())
		require.NoError(t, err, m.String())
		assert.Equal(t,
			"first ("+m.String()+" method): 2\nsecond ("+m.String()+" method): 3\n", out)
	}
}

func TestSolve_DefaultInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultInput), []byte(goodJSON), 0o600))
	t.Chdir(dir)

	out, _, err := run(t, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "first (lagrange method): 2")
}

func TestSolve_Coefficients(t *testing.T) {
	path := writeFile(t, "tests.json", goodJSON)

	out, _, err := run(t, "solve", path, "--method", "matrix", "--coefficients", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"first (matrix method): 2\n  coefficients: [1, 1, 2]\n"+
			"second (matrix method): 3\n  coefficients: [2, 3]\n", out)
}

// TestSolve_PartialFailure: a failing case is reported, others still print,
// and the command fails.
func TestSolve_PartialFailure(t *testing.T) {
	path := writeFile(t, "tests.json", badJSON)

	out, _, err := run(t, "solve", path)
	assert.ErrorIs(t, err, cmd.ErrCasesFailed)
	assert.Contains(t, out, "ok (lagrange method): 3\n")
	assert.Contains(t, out, "short (lagrange method): error:")
}

func TestSolve_InvalidMethod(t *testing.T) {
	path := writeFile(t, "tests.json", goodJSON)

	out, _, err := run(t, "solve", path, "--method", "newton")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newton")
	assert.Empty(t, out)
}

func TestSolve_ConfigFile(t *testing.T) {
	in := writeFile(t, "cases.json", goodJSON)
	cfg := writeFile(t, "lvsecret.yaml", "method: gauss\ninput: "+in+"\n")

	out, _, err := run(t, "solve", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "first (gauss method): 2")

	// Flag beats file.
	out, _, err = run(t, "solve", "--config", cfg, "--method", "matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "first (matrix method): 2")
}

func TestSolve_InvalidConfigMethod(t *testing.T) {
	t.Setenv("LVSECRET_METHOD", "newton")
	path := writeFile(t, "tests.json", goodJSON)

	_, _, err := run(t, "solve", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, solver.ErrInvalidMethod)
}

func TestSolve_MissingFile(t *testing.T) {
	_, _, err := run(t, "solve", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestSolve_MalformedFile(t *testing.T) {
	path := writeFile(t, "tests.json", `[1, 2]`)
	_, _, err := run(t, "solve", path)
	assert.ErrorIs(t, err, shares.ErrMalformedInput)
}

func TestSolve_JSONLogs(t *testing.T) {
	path := writeFile(t, "tests.json", goodJSON)

	_, errOut, err := run(t, "solve", path, "--log-json", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"module":"batch"`)
	assert.Contains(t, errOut, `"case":"first"`)
	assert.Contains(t, errOut, "loaded test cases")
}

func TestVerify(t *testing.T) {
	out, _, err := run(t, "verify", writeFile(t, "tests.json", goodJSON))
	require.NoError(t, err)
	assert.Equal(t, "first: all methods agree: 2\nsecond: all methods agree: 3\n", out)

	out, _, err = run(t, "verify", writeFile(t, "tests.json", badJSON))
	assert.ErrorIs(t, err, cmd.ErrCasesFailed)
	assert.Contains(t, out, "ok: all methods agree: 3\n")
	assert.Contains(t, out, "short: lagrange=error matrix=error gauss=error:")
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "decode", "2", "111")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, _, err = run(t, "decode", "16", "ff")
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)

	_, _, err = run(t, "decode", "2", "12")
	assert.ErrorIs(t, err, basecode.ErrInvalidDigit)

	_, _, err = run(t, "decode", "99", "1")
	assert.ErrorIs(t, err, basecode.ErrInvalidBase)

	_, _, err = run(t, "decode", "2")
	require.Error(t, err)
}

// TestCodecIgnoresConfig: decode and encode work even when the solver
// configuration is invalid.
func TestCodecIgnoresConfig(t *testing.T) {
	t.Setenv("LVSECRET_METHOD", "newton")

	out, _, err := run(t, "decode", "16", "ff")
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)

	out, _, err = run(t, "encode", "2", "7")
	require.NoError(t, err)
	assert.Equal(t, "111\n", out)
}

func TestEncode(t *testing.T) {
	out, _, err := run(t, "encode", "2", "7")
	require.NoError(t, err)
	assert.Equal(t, "111\n", out)

	out, _, err = run(t, "encode", "16", "255")
	require.NoError(t, err)
	assert.Equal(t, "ff\n", out)

	_, _, err = run(t, "encode", "16", "-5")
	assert.ErrorIs(t, err, basecode.ErrInvalidDigit)

	_, _, err = run(t, "encode", "1", "5")
	assert.ErrorIs(t, err, basecode.ErrInvalidBase)
}
