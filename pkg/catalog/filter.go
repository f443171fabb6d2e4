package catalog

import (
	"fmt"
	"strings"

	"github.com/praetorian-inc/rejigs"
	"github.com/praetorian-inc/rejigs/pkg/types"
)

// FilterConfig specifies include and exclude patterns for definition filtering.
type FilterConfig struct {
	Include []string // Regex patterns - only matching definitions included
	Exclude []string // Regex patterns - matching definitions excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return []string{}
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude patterns to definition IDs.
// Include is applied first, then exclude.
// Empty include means "include all".
// Returns error if any pattern is invalid regex.
func Filter(defs []*types.Definition, config FilterConfig) ([]*types.Definition, error) {
	if len(defs) == 0 {
		return defs, nil
	}

	include, err := compileAll(config.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileAll(config.Exclude)
	if err != nil {
		return nil, err
	}

	filtered := defs
	if len(include) > 0 {
		filtered, err = keep(filtered, include, true)
		if err != nil {
			return nil, err
		}
	}
	if len(exclude) > 0 {
		filtered, err = keep(filtered, exclude, false)
		if err != nil {
			return nil, err
		}
	}

	return filtered, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func compileAll(patterns []string) ([]*rejigs.Regexp, error) {
	var out []*rejigs.Regexp
	for _, pattern := range patterns {
		re, err := rejigs.Create().Raw(pattern).Compile()
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// keep returns the definitions whose ID matches any of regexes (want true)
// or none of them (want false).
func keep(defs []*types.Definition, regexes []*rejigs.Regexp, want bool) ([]*types.Definition, error) {
	result := make([]*types.Definition, 0)
	for _, d := range defs {
		hit, err := matchesAny(d.ID, regexes)
		if err != nil {
			return nil, err
		}
		if hit == want {
			result = append(result, d)
		}
	}
	return result, nil
}

func matchesAny(id string, regexes []*rejigs.Regexp) (bool, error) {
	for _, re := range regexes {
		ok, err := re.MatchString(id)
		if err != nil {
			return false, fmt.Errorf("matching %q against %s: %w", id, re, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
