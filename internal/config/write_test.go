package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, string(data))
}

func TestWriteDefault_KeepsExistingUnlessForced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrExist))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	require.NoError(t, WriteDefault(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, string(data))
}

func TestWrite_RoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Notifications = NotificationsConfig{Enabled: true, From: "noreply@example.com"}
	cfg.Movies[0].ReleaseDate = time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC)
	cfg.Movies[0].Resolution = "1080p"

	path := filepath.Join(t.TempDir(), "out", "config.toml")
	require.NoError(t, cfg.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# reelcat catalog: 1 users, 1 movies, 1 series\n"))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Log, loaded.Log)
	assert.Equal(t, cfg.Notifications, loaded.Notifications)
	assert.Equal(t, cfg.Users, loaded.Users)
	require.Len(t, loaded.Movies, 1)
	assert.Equal(t, "1080p", loaded.Movies[0].Resolution)
	assert.True(t, cfg.Movies[0].ReleaseDate.Equal(loaded.Movies[0].ReleaseDate))
	assert.Equal(t, cfg.Series[0].Seasons, loaded.Series[0].Seasons)
}

func TestWrite_RejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Movies[0].Duration = 0
	path := filepath.Join(t.TempDir(), "config.toml")

	err := cfg.Write(path)
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	entries := cfgErr.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, `movies[0] "Heat"`, entries[0].Label())

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "nothing should be written")
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, validConfig().Write(filepath.Join(dir, "config.toml")))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "config.toml", files[0].Name())
}
