// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permav/basis"
	"github.com/katalvlaran/permav/perm"
)

// run executes the root command with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "permav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestContains(t *testing.T) {
	out, err := run(t, "contains", "201", "530421")
	require.NoError(t, err)
	assert.Equal(t, "true (6 occurrences)\n", out)

	out, err = run(t, "contains", "012", "210")
	require.NoError(t, err)
	assert.Equal(t, "false (0 occurrences)\n", out)
}

func TestContains_BadInput(t *testing.T) {
	_, err := run(t, "contains", "11", "530421")
	require.Error(t, err)
	assert.ErrorIs(t, err, perm.ErrValue)

	_, err = run(t, "contains", "01")
	require.Error(t, err)
}

func TestOccurrences(t *testing.T) {
	out, err := run(t, "occurrences", "201", "530421")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines, "0 2 4")
	assert.Contains(t, lines, "1 2 5")
}

func TestEnumerate(t *testing.T) {
	out, err := run(t, "enumerate", "120", "012_210", "", "--max-length", "6")
	require.NoError(t, err)
	assert.Equal(t,
		"Av{120}: 1 1 2 5 14 42 132\n"+
			"Av{012, 210}: 1 1 2 4 4 0 0\n"+
			"Av{}: 1 1 2 6 24 120 720\n",
		out)
}

func TestEnumerate_ConfigDefault(t *testing.T) {
	path := writeConfig(t, "max_length: 3\n")
	out, err := run(t, "--config", path, "enumerate", "10")
	require.NoError(t, err)
	assert.Equal(t, "Av{10}: 1 1 1 1\n", out)
}

func TestEnumerate_RangeChecked(t *testing.T) {
	_, err := run(t, "enumerate", "120", "--max-length", "99")
	require.Error(t, err)
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "120", "--length", "6", "--count", "4", "--seed", "7")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	b := basis.MustParse("120")
	for _, line := range lines {
		p, err := perm.Parse(line)
		require.NoError(t, err)
		assert.Equal(t, 6, p.Len())
		assert.True(t, b.AvoidedBy(p), line)
	}

	again, err := run(t, "sample", "120", "--length", "6", "--count", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same draws")
}

func TestSample_FiniteClass(t *testing.T) {
	_, err := run(t, "sample", "012_210", "--length", "5", "--seed", "1")
	require.Error(t, err)
}

func TestBasis(t *testing.T) {
	out, err := run(t, "basis", "0123", "012", "210")
	require.NoError(t, err)
	assert.Equal(t, "{012, 210}\n", out)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := writeConfig(t, "max_length: 10\nunchecked: true\nlog_level: warn\nseed: 42\n")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{MaxLength: 10, Unchecked: true, LogLevel: "warn", Seed: 42}, cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative length": "max_length: -1\n",
		"too long":        "max_length: 40\n",
		"bad level":       "log_level: loud\n",
		"bad yaml":        "max_length: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
