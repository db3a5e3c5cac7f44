package download

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Default naming templates.
const (
	DefaultMovieTemplate  = "{title}/{title}.{ext}"
	DefaultSeriesTemplate = "{title}/Season {season:02}/{title} - S{season:02}E{episode:02}.{ext}"
	DefaultExtension      = "mp4"
)

// Planner applies naming templates to produce download file paths.
type Planner struct {
	movieTemplate  string
	seriesTemplate string
	ext            string
}

// NewPlanner creates a Planner. Empty arguments select the defaults.
func NewPlanner(movieTemplate, seriesTemplate, ext string) *Planner {
	if movieTemplate == "" {
		movieTemplate = DefaultMovieTemplate
	}
	if seriesTemplate == "" {
		seriesTemplate = DefaultSeriesTemplate
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = DefaultExtension
	}
	return &Planner{
		movieTemplate:  movieTemplate,
		seriesTemplate: seriesTemplate,
		ext:            ext,
	}
}

// MoviePath returns the relative path for a movie file.
func (p *Planner) MoviePath(title string) string {
	return applyTemplate(p.movieTemplate, map[string]any{
		"title": SanitizeFilename(title),
		"ext":   p.ext,
	})
}

// EpisodePath returns the relative path for a series episode file.
func (p *Planner) EpisodePath(title string, season, episode int) string {
	return applyTemplate(p.seriesTemplate, map[string]any{
		"title":   SanitizeFilename(title),
		"season":  season,
		"episode": episode,
		"ext":     p.ext,
	})
}

// Resolve joins rel onto root and rejects results outside root.
func Resolve(root, rel string) (string, error) {
	full := filepath.Join(root, rel)
	if err := ValidatePath(full, root); err != nil {
		return "", fmt.Errorf("%s: %w", rel, err)
	}
	return full, nil
}

// formatPattern matches {name} or {name:02} placeholders.
var formatPattern = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

func applyTemplate(template string, vars map[string]any) string {
	return formatPattern.ReplaceAllStringFunc(template, func(match string) string {
		parts := formatPattern.FindStringSubmatch(match)
		val, ok := vars[parts[1]]
		if !ok {
			return match
		}
		if parts[2] != "" {
			if width, err := strconv.Atoi(parts[2]); err == nil {
				if n, ok := val.(int); ok {
					return fmt.Sprintf("%0*d", width, n)
				}
			}
		}
		return fmt.Sprintf("%v", val)
	})
}

var (
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)
	multiSpace   = regexp.MustCompile(`\s+`)
	multiDot     = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFilename strips characters that are unsafe in file names,
// including path separators.
func SanitizeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, " ")
	name = multiDot.ReplaceAllString(name, ".")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.Trim(name, " .")
}

// ValidatePath returns ErrPathTraversal if path is not inside root.
func ValidatePath(path, root string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return nil
	}
	prefix := cleanRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(cleanPath, prefix) {
		return ErrPathTraversal
	}
	return nil
}
