package filters

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/logging"
)

// Glob matches files whose base name matches a glob pattern. Patterns
// without glob characters are compared as exact names.
type Glob struct {
	pattern string
	isGlob  bool
}

// NewGlob creates a Glob filter, validating the pattern eagerly.
func NewGlob(pattern string) (*Glob, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrInvalidInput, "glob pattern cannot be empty")
	}

	isGlob := containsGlobChars(pattern)
	if isGlob {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid glob pattern %q", pattern)
		}
	}

	logger := logging.GetLogger("filters.glob")
	logger.Trace().
		Str("pattern", pattern).
		Bool("is_glob", isGlob).
		Msg("created glob filter")

	return &Glob{pattern: pattern, isGlob: isGlob}, nil
}

// Match checks the file's base name against the pattern
func (g *Glob) Match(path string) bool {
	filename := filepath.Base(path)

	if !g.isGlob {
		return filename == g.pattern
	}

	// Pattern was validated at construction, so Match cannot fail here
	matched, _ := filepath.Match(g.pattern, filename)
	return matched
}

// containsGlobChars checks if a pattern contains glob special characters
func containsGlobChars(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
