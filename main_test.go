package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runForTest(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), newLoggerTo(&bytes.Buffer{}, true), args, &out)
	return out.String(), err
}

func TestRun_DryRun(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.json")

	out, err := runForTest(t, "-config", cfg, "-day", "3", "-dry-run")
	require.NoError(t, err)
	assert.Equal(t,
		"> cargo scaffold 3\n"+
			"> cargo download 3\n"+
			"> code .\n"+
			"> open https://adventofcode.com/2022/day/3\n",
		out)
}

func TestRun_CheckReportsMissingTools(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(string) (string, error) { return "", errors.New("not found") }

	cfg := filepath.Join(t.TempDir(), "missing.json")
	out, err := runForTest(t, "-config", cfg, "-day", "3", "-check", "-dry-run")
	require.ErrorIs(t, err, errMissingTool)
	assert.Empty(t, out)
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		out, err := runForTest(t, arg)
		require.NoError(t, err, arg)
		assert.Contains(t, out, "Usage:", arg)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "stray argument", args: []string{"today"}},
		{name: "day too large", args: []string{"-day", "32"}},
		{name: "negative day", args: []string{"-day", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runForTest(t, tt.args...)
			require.ErrorIs(t, err, errUsage)
			assert.Empty(t, out)
		})
	}
}

func TestRun_BadConfig(t *testing.T) {
	path := writeConfig(t, `{"year": 1999}`)
	_, err := runForTest(t, "-config", path, "-dry-run")
	require.Error(t, err)
}
