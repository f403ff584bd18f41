package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridor = `conn: 4
rows:
  - "..."
  - "##."
  - "..."
`

const walled = `rows:
  - "..."
  - "###"
  - "..."
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestPath_Found(t *testing.T) {
	m := writeFile(t, "corridor.yaml", corridor)

	code, out, _ := runArgs("path", "--map", m, "--from", "0,0", "--to", "0,2")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "S**\n##*\nG**\n")
	assert.Contains(t, out, "path: 0,0 -> 1,0 -> 2,0 -> 2,1 -> 2,2 -> 1,2 -> 0,2\n")
	assert.Contains(t, out, "cost: 60\n")
	assert.Contains(t, out, "expanded: 7")
}

func TestPath_NoPath(t *testing.T) {
	m := writeFile(t, "walled.yaml", walled)

	code, out, errOut := runArgs("path", "--map", m, "--from", "0,0", "--to", "2,2")
	assert.Equal(t, exitNoPath, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no path")
}

func TestPath_UsageErrors(t *testing.T) {
	m := writeFile(t, "corridor.yaml", corridor)

	cases := map[string][]string{
		"MissingMap":    {"path", "--from", "0,0", "--to", "1,0"},
		"MissingFile":   {"path", "--map", filepath.Join(t.TempDir(), "none.yaml"), "--from", "0,0", "--to", "1,0"},
		"MissingTo":     {"path", "--map", m, "--from", "0,0"},
		"BadCell":       {"path", "--map", m, "--from", "zero", "--to", "1,0"},
		"OutsideGrid":   {"path", "--map", m, "--from", "0,0", "--to", "9,9"},
		"SameEndpoints": {"path", "--map", m, "--from", "1,0", "--to", "1,0"},
		"BadConn":       {"path", "--map", m, "--conn", "6", "--from", "0,0", "--to", "1,0"},
		"BadLogLevel":   {"path", "--map", m, "--log-level", "loud", "--from", "0,0", "--to", "1,0"},
		"UnknownFlag":   {"path", "--nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := runArgs(args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestPath_ConnOverride(t *testing.T) {
	m := writeFile(t, "open.yaml", "rows:\n  - \"..\"\n  - \"..\"\n")

	code, out, _ := runArgs("path", "--map", m, "--from", "0,0", "--to", "1,1", "--conn", "8")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "path: 0,0 -> 1,1\n")
	assert.Contains(t, out, "cost: 14\n")
}

func TestPath_EnvAndConfig(t *testing.T) {
	m := writeFile(t, "corridor.yaml", corridor)
	cfg := writeFile(t, "spheregrid.yaml", "from: 0,0\nto: 2,0\n")
	t.Setenv("SPHEREGRID_MAP", m)
	t.Setenv("SPHEREGRID_LOG_LEVEL", "error")

	code, out, _ := runArgs("path", "--config", cfg)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "path: 0,0 -> 1,0 -> 2,0\n")

	// Flags win over the config file.
	code, out, _ = runArgs("path", "--config", cfg, "--to", "2,1")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "path: 0,0 -> 1,0 -> 2,0 -> 2,1\n")
}

func TestComponents(t *testing.T) {
	m := writeFile(t, "walled.yaml", walled)

	code, out, _ := runArgs("components", "--map", m)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "components: 2\n0: 3 cells from 0,0\n1: 3 cells from 0,2\n", out)
}

func TestBridge(t *testing.T) {
	m := writeFile(t, "walled.yaml", walled)

	code, out, _ := runArgs("bridge", "--map", m)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "open 2,1\nobstacles: 1\n", out)

	code, _, _ = runArgs("bridge", "--map", m, "--dst", "5")
	assert.Equal(t, exitUsage, code)
}
