package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `
[log]
level = "error"

[download]
root = "/srv/media"

[[users]]
name = "alice"
email = "alice@example.com"
subscribed = true

[[users]]
name = "bob"

[[movies]]
title = "The Matrix"
description = "A hacker learns what the world really is."
release_date = 1999-03-31
resolution = "1080p"
duration = 136

[[movies]]
title = "Nosferatu"
free = true
duration = 94

[[series]]
title = "Breaking Bad"
resolution = "hd"

  [[series.seasons]]
    [[series.seasons.episodes]]
    duration = 58
    [[series.seasons.episodes]]
    duration = 48

  [[series.seasons]]
    [[series.seasons.episodes]]
    duration = 47
`

// writeTestConfig writes body to a temp config.toml and returns its path.
func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// runCmd executes a fresh command tree and returns what it wrote to stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}
