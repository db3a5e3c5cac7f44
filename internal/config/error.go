package config

import (
	"fmt"
	"strings"
)

// Error aggregates everything wrong with a config file.
type Error struct {
	Path    string   // Config file path
	Missing []string // Unresolved environment variables
	Errors  []string // Validation errors, each prefixed with its field path
	// Titles maps catalog entries such as "movies[0]" to their title, so
	// reports can name the entry a reader will recognize.
	Titles map[string]string
}

// EntryErrors are the validation errors for one config entry.
type EntryErrors struct {
	Entry    string   // "movies[0]", "series[1]", "users[0]", "log", ...
	Title    string   // catalog title, if the entry has one
	Messages []string // errors with the entry prefix removed
}

// Label returns the entry and, when known, its quoted title.
func (e EntryErrors) Label() string {
	if e.Title == "" {
		return e.Entry
	}
	return fmt.Sprintf("%s %q", e.Entry, e.Title)
}

// Entries groups validation errors by entry, in the order entries first fail.
func (e *Error) Entries() []EntryErrors {
	var out []EntryErrors
	index := map[string]int{}
	for _, msg := range e.Errors {
		entry, rest := splitEntry(msg)
		i, ok := index[entry]
		if !ok {
			i = len(out)
			index[entry] = i
			out = append(out, EntryErrors{Entry: entry, Title: e.Titles[entry]})
		}
		out[i].Messages = append(out[i].Messages, rest)
	}
	return out
}

func (e *Error) Error() string {
	if len(e.Missing) == 0 && len(e.Errors) == 0 {
		return ""
	}

	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%s: missing environment variables: %s", e.Path, strings.Join(e.Missing, ", ")))
	}
	if len(e.Errors) > 0 {
		entries := e.Entries()
		parts = append(parts, fmt.Sprintf("%s: validation failed in %d %s:", e.Path, len(entries), plural(len(entries), "entry", "entries")))
		for _, entry := range entries {
			for _, msg := range entry.Messages {
				parts = append(parts, fmt.Sprintf("  - %s: %s", entry.Label(), msg))
			}
		}
	}
	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// splitEntry splits "movies[0].seasons[1].duration: bad" into "movies[0]"
// and "seasons[1].duration: bad".
func splitEntry(msg string) (string, string) {
	end := strings.IndexAny(msg, ".:")
	if end < 0 {
		return msg, ""
	}
	entry := msg[:end]
	rest := msg[end:]
	if rest[0] == '.' {
		rest = rest[1:]
	} else {
		rest = strings.TrimSpace(rest[1:])
	}
	return entry, rest
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// entryTitles maps each titled catalog entry to its title.
func (c *Config) entryTitles() map[string]string {
	titles := make(map[string]string, len(c.Movies)+len(c.Series))
	for i, m := range c.Movies {
		if m.Title != "" {
			titles[fmt.Sprintf("movies[%d]", i)] = m.Title
		}
	}
	for i, s := range c.Series {
		if s.Title != "" {
			titles[fmt.Sprintf("series[%d]", i)] = s.Title
		}
	}
	for i, u := range c.Users {
		if u.Name != "" {
			titles[fmt.Sprintf("users[%d]", i)] = u.Name
		}
	}
	return titles
}
