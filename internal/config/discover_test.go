package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateDiscovery points every search location into a temp dir and makes
// it the working directory.
func isolateDiscovery(t *testing.T) string {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))

	t.Setenv("REELCAT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	origSystem := systemPath
	systemPath = filepath.Join(tmp, "etc", "config.toml")
	t.Cleanup(func() { systemPath = origSystem })
	return tmp
}

func assertSameFile(t *testing.T, want, got string) {
	t.Helper()
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	wantInfo, err := os.Stat(want)
	require.NoError(t, err)
	gotInfo, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo), "expected %s, got %s", want, got)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Contains(t, DefaultPath(), ".config/reelcat/config.toml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/reelcat/config.toml", DefaultPath())
}

func TestDiscover_ExplicitRelativePath(t *testing.T) {
	tmp := isolateDiscovery(t)
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "conf"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "conf", "catalog.toml"), []byte("[log]"), 0644))
	// An explicit path beats REELCAT_CONFIG.
	t.Setenv("REELCAT_CONFIG", "/nonexistent/config.toml")

	path, err := Discover("conf/catalog.toml")
	require.NoError(t, err)
	assertSameFile(t, filepath.Join(tmp, "conf", "catalog.toml"), path)
}

func TestDiscover_ExplicitHomePath(t *testing.T) {
	isolateDiscovery(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "reelcat.toml"), []byte("[log]"), 0644))

	path, err := Discover("~/reelcat.toml")
	require.NoError(t, err)
	assertSameFile(t, filepath.Join(home, "reelcat.toml"), path)
}

func TestDiscover_ExplicitErrors(t *testing.T) {
	tmp := isolateDiscovery(t)

	_, err := Discover("missing.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config=missing.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Discover(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestDiscover_EnvOverride(t *testing.T) {
	tmp := isolateDiscovery(t)
	cfgPath := filepath.Join(tmp, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]"), 0644))
	t.Setenv("REELCAT_CONFIG", cfgPath)

	path, err := Discover("")
	require.NoError(t, err)
	assertSameFile(t, cfgPath, path)
}

func TestDiscover_EnvOverrideNotFound(t *testing.T) {
	isolateDiscovery(t)
	t.Setenv("REELCAT_CONFIG", "/nonexistent/config.toml")

	_, err := Discover("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REELCAT_CONFIG")
}

func TestDiscover_SearchOrder(t *testing.T) {
	tmp := isolateDiscovery(t)
	xdg := filepath.Join(tmp, "xdg", "reelcat", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(xdg), 0755))
	require.NoError(t, os.WriteFile(xdg, []byte("[log]"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Dir(systemPath), 0755))
	require.NoError(t, os.WriteFile(systemPath, []byte("[log]"), 0644))

	path, err := Discover("")
	require.NoError(t, err)
	assertSameFile(t, xdg, path)

	require.NoError(t, os.WriteFile("config.toml", []byte("[log]"), 0644))
	path, err = Discover("")
	require.NoError(t, err)
	assertSameFile(t, filepath.Join(tmp, "config.toml"), path)
}

func TestDiscover_SystemPath(t *testing.T) {
	isolateDiscovery(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(systemPath), 0755))
	require.NoError(t, os.WriteFile(systemPath, []byte("[log]"), 0644))

	path, err := Discover("")
	require.NoError(t, err)
	assertSameFile(t, systemPath, path)
}

func TestDiscover_NotFound(t *testing.T) {
	isolateDiscovery(t)

	_, err := Discover("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config not found")
	assert.Contains(t, err.Error(), "reelcat init")
}
