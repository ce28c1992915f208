package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "flexheader.log")))
	err := root.Execute()
	return out.String(), err
}

func TestRootPrintsWithoutTerminal(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	require.Contains(t, out, "HOGEHOFE")
	require.Contains(t, out, "tanner")
}

func TestPrintText(t *testing.T) {
	out, err := run(t, "print", "--no-uppercase")
	require.NoError(t, err)
	require.Contains(t, out, "Profile Progress")
	require.NotContains(t, out, "PROFILE PROGRESS")
}

func TestPrintHTML(t *testing.T) {
	out, err := run(t, "print", "--format", "html")
	require.NoError(t, err)
	require.Contains(t, out, `rowspan="3"`)
	require.Contains(t, out, "<tbody>")
}

func TestPrintUnknownFormat(t *testing.T) {
	_, err := run(t, "print", "-f", "csv")
	require.ErrorContains(t, err, `unknown format "csv"`)
}

func TestHeaders(t *testing.T) {
	out, err := run(t, "headers")
	require.NoError(t, err)
	require.Contains(t, out, "Column Depth")
	require.Contains(t, out, "2_hello_3_firstName_firstName")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	require.Contains(t, out, "Row Span Hint")
	require.NotContains(t, out, "mismatch")
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "print", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "reading config")
}
