package reflection

import "strings"

// Filter decides whether a qualified class name should be retained.
// Matching is a plain case-sensitive substring search with no anchoring
// and no wildcard syntax.
type Filter struct {
	patterns []string
}

// NewFilter creates a filter from a list of substring patterns. An empty
// (or nil) list includes every name.
func NewFilter(patterns []string) *Filter {
	return &Filter{patterns: patterns}
}

// ShouldInclude reports whether qualifiedName contains at least one of the
// filter's patterns. With no patterns configured it always returns true.
func (f *Filter) ShouldInclude(qualifiedName string) bool {
	if len(f.patterns) == 0 {
		return true
	}

	for _, pattern := range f.patterns {
		if strings.Contains(qualifiedName, pattern) {
			return true
		}
	}
	return false
}
