package config

import (
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/tsdecl/tsdecl/internal/errors"
)

// Matcher decides which file paths the config selects for translation.
type Matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

// Matcher compiles the config's include and exclude patterns. Patterns use
// '/' as the path separator so that '*' never crosses directories.
func (c *Config) Matcher() (*Matcher, error) {
	m := &Matcher{}
	for _, pattern := range c.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "include pattern %q", pattern)
		}
		m.include = append(m.include, g)
	}
	for _, pattern := range c.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "exclude pattern %q", pattern)
		}
		m.exclude = append(m.exclude, g)
	}
	return m, nil
}

// Matches reports whether path is included and not excluded. Paths are
// normalized to forward slashes before matching.
func (m *Matcher) Matches(path string) bool {
	p := filepath.ToSlash(path)
	included := false
	for _, g := range m.include {
		if g.Match(p) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, g := range m.exclude {
		if g.Match(p) {
			return false
		}
	}
	return true
}
