// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const wordList = "cat\ncar\ncards\n\ncare\ndog\ncar\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestComplete(t *testing.T) {
	t.Parallel()

	out, err := run(t, wordList, "complete", "car")
	require.NoError(t, err)
	// the duplicate "car" on line 7 replaces line 2
	require.Equal(t, "car\t7\ncards\t3\ncare\t5\n", out)
}

func TestCompleteLimit(t *testing.T) {
	t.Parallel()

	out, err := run(t, wordList, "complete", "ca", "--limit", "2")
	require.NoError(t, err)
	require.Equal(t, "car\t7\ncards\t3\n", out)
}

func TestCompleteRunes(t *testing.T) {
	t.Parallel()

	out, err := run(t, "héllo\nhéros\nhello\n", "--runes", "complete", "hé")
	require.NoError(t, err)
	require.Equal(t, "héllo\t1\nhéros\t2\n", out)
}

func TestRunesRejectInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := run(t, "ok\n\xff\xfe\n", "--runes", "stats")
	require.Error(t, err)
	require.Contains(t, err.Error(), "stdin:2")
}

func TestLookupFromFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("alpha\nbeta\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("gamma\n"), 0o600))

	out, err := run(t, "", "-w", first, "-w", second, "lookup", "beta", "gamma", "delta")
	require.NoError(t, err)
	require.Equal(t, "beta\t2\ngamma\t1\ndelta\tnot found\n", out)
}

func TestLookupMissingFile(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "-w", filepath.Join(t.TempDir(), "nope.txt"), "lookup", "x")
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	t.Parallel()

	out, err := run(t, wordList, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "keys")
	require.Contains(t, out, "5\n")
	require.Contains(t, out, "node4")
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := run(t, wordList, "--log-level", "loud", "stats")
	require.ErrorContains(t, err, "invalid --log-level")
}

func TestDebugLogForEveryInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n"), 0o600))

	for _, args := range [][]string{
		{"--log-level", "debug", "stats"},
		{"--log-level", "debug", "-w", path, "stats"},
	} {
		cmd := newRootCmd()
		var out, errOut bytes.Buffer
		cmd.SetIn(strings.NewReader("alpha\n"))
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		require.Contains(t, errOut.String(), "index ready", args)
		require.Contains(t, errOut.String(), "keys=1", args)
	}
}
