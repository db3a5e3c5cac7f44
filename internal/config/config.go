// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log           LogConfig           `toml:"log"`
	Download      DownloadConfig      `toml:"download"`
	Notifications NotificationsConfig `toml:"notifications"`
	Users         []UserConfig        `toml:"users"`
	Movies        []MovieConfig       `toml:"movies"`
	Series        []SeriesConfig      `toml:"series"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

type DownloadConfig struct {
	Root           string `toml:"root"`
	MovieTemplate  string `toml:"movie_template"`
	SeriesTemplate string `toml:"series_template"`
	Extension      string `toml:"extension"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	From    string `toml:"from"`
}

type UserConfig struct {
	Name       string `toml:"name"`
	Email      string `toml:"email"`
	Subscribed bool   `toml:"subscribed"`
}

type MovieConfig struct {
	Title       string    `toml:"title"`
	Description string    `toml:"description,omitempty"`
	ReleaseDate time.Time `toml:"release_date,omitempty"`
	Resolution  string    `toml:"resolution,omitempty"`
	Free        bool      `toml:"free,omitempty"`
	Duration    int       `toml:"duration"`
	Video       string    `toml:"video,omitempty"`
}

type SeriesConfig struct {
	Title       string         `toml:"title"`
	Description string         `toml:"description,omitempty"`
	ReleaseDate time.Time      `toml:"release_date,omitempty"`
	Resolution  string         `toml:"resolution,omitempty"`
	Free        bool           `toml:"free,omitempty"`
	Seasons     []SeasonConfig `toml:"seasons"`
}

// SeasonConfig lists a season's episodes. Seasons and episodes are
// numbered by their position, starting at 1.
type SeasonConfig struct {
	Episodes []EpisodeConfig `toml:"episodes"`
}

type EpisodeConfig struct {
	Duration int    `toml:"duration"`
	Video    string `toml:"video,omitempty"`
}

// Load reads, substitutes, decodes, defaults and validates the config file.
// Substitution and validation problems are returned as *Error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs, Titles: cfg.entryTitles()}
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Download.Root == "" {
		c.Download.Root = "./downloads"
	}
	if c.Download.Extension == "" {
		c.Download.Extension = "mp4"
	}
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} with the variable's value. ${VAR:-def}
// falls back to def when VAR is unset or empty. Unresolved names are
// returned in order of first appearance and left in place.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := map[string]bool{}
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name := parts[1]
		hasDefault := strings.Contains(match, ":-")
		if value, ok := os.LookupEnv(name); ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return parts[2]
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match
	})
	return out, missing
}

// IsConfigError reports whether err carries an *Error.
func IsConfigError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
