package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/reelcat/internal/content"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be text or json; got %q", c.Log.Format))
	}

	if c.Notifications.Enabled && strings.TrimSpace(c.Notifications.From) == "" {
		errs = append(errs, "notifications.from: required when notifications are enabled")
	}

	names := map[string]bool{}
	for i, u := range c.Users {
		if strings.TrimSpace(u.Name) == "" {
			errs = append(errs, fmt.Sprintf("users[%d].name: required", i))
			continue
		}
		if names[u.Name] {
			errs = append(errs, fmt.Sprintf("users[%d].name: duplicate user %q", i, u.Name))
		}
		names[u.Name] = true
	}

	titles := map[string]bool{}
	checkTitle := func(field, title string) {
		if strings.TrimSpace(title) == "" {
			errs = append(errs, field+".title: required")
			return
		}
		if titles[title] {
			errs = append(errs, fmt.Sprintf("%s.title: duplicate title %q", field, title))
		}
		titles[title] = true
	}
	checkCommon := func(field, resolution string, released time.Time) {
		if _, err := content.ParseResolution(resolution); err != nil {
			errs = append(errs, fmt.Sprintf("%s.resolution: unknown resolution %q", field, resolution))
		}
		if released.After(time.Now()) {
			errs = append(errs, fmt.Sprintf("%s.release_date: %s is in the future", field, released.Format(content.DateLayout)))
		}
	}

	for i, m := range c.Movies {
		field := fmt.Sprintf("movies[%d]", i)
		checkTitle(field, m.Title)
		checkCommon(field, m.Resolution, m.ReleaseDate)
		if m.Duration <= 0 {
			errs = append(errs, fmt.Sprintf("%s.duration: must be positive, got %d", field, m.Duration))
		}
	}

	for i, s := range c.Series {
		field := fmt.Sprintf("series[%d]", i)
		checkTitle(field, s.Title)
		checkCommon(field, s.Resolution, s.ReleaseDate)
		if len(s.Seasons) == 0 {
			errs = append(errs, field+".seasons: at least one season required")
		}
		for j, season := range s.Seasons {
			if len(season.Episodes) == 0 {
				errs = append(errs, fmt.Sprintf("%s.seasons[%d].episodes: at least one episode required", field, j))
			}
			for k, ep := range season.Episodes {
				if ep.Duration <= 0 {
					errs = append(errs, fmt.Sprintf("%s.seasons[%d].episodes[%d].duration: must be positive, got %d", field, j, k, ep.Duration))
				}
			}
		}
	}

	return errs
}
