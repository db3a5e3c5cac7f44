package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the example catalog config to path, creating parent
// directories. An existing file is only replaced when force is set;
// otherwise the error wraps fs.ErrExist.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, fs.ErrExist)
		}
	}
	return writeFile(path, []byte(defaultConfig))
}

// Write validates c and writes it as TOML to path. An invalid config is
// returned as *Error and nothing is written. The file is replaced
// atomically.
func (c *Config) Write(path string) error {
	if errs := c.Validate(); len(errs) > 0 {
		return &Error{Path: path, Errors: errs, Titles: c.entryTitles()}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# reelcat catalog: %d users, %d movies, %d series\n\n",
		len(c.Users), len(c.Movies), len(c.Series))
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".reelcat-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
