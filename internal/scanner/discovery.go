package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	var compiled []compiledPattern
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledPattern{pattern: pattern, glob: g})
	}
	return compiled, nil
}

// ignoreMatcher applies the configured ignore globs plus the always-ignored
// .classver output directory. It is shared by file discovery and the watcher
// so both honor the same ignore rules.
type ignoreMatcher struct {
	patterns []compiledPattern
}

func newIgnoreMatcher(patterns []string) (*ignoreMatcher, error) {
	compiled, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}
	return &ignoreMatcher{patterns: compiled}, nil
}

// Matches checks a root-relative slash-separated path against the ignore
// rules.
func (m *ignoreMatcher) Matches(relPath string) bool {
	// Always ignore the .classver directory
	if strings.HasPrefix(relPath, ".classver/") || relPath == ".classver" {
		return true
	}

	if matchesAnyPattern(relPath, m.patterns) {
		return true
	}

	// Also check if this is a directory that would match with /** suffix,
	// so "build" matches pattern "build/**".
	pathWithSuffix := relPath + "/**"
	return matchesAnyPattern(pathWithSuffix, m.patterns)
}

// FileDiscovery handles source file discovery with glob patterns and ignore rules.
type FileDiscovery struct {
	rootDir      string
	codePatterns []compiledPattern
	ignore       *ignoreMatcher
}

// NewFileDiscovery creates a new file discovery instance.
func NewFileDiscovery(rootDir string, codePatterns, ignorePatterns []string) (*FileDiscovery, error) {
	compiled, err := compilePatterns(codePatterns)
	if err != nil {
		return nil, err
	}

	ignore, err := newIgnoreMatcher(ignorePatterns)
	if err != nil {
		return nil, err
	}

	return &FileDiscovery{
		rootDir:      rootDir,
		codePatterns: compiled,
		ignore:       ignore,
	}, nil
}

// DiscoverFiles walks the directory tree and returns matching source files
// in deterministic walk order.
func (fd *FileDiscovery) DiscoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.Walk(fd.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}

		// Normalize path separators for glob matching
		relPath = filepath.ToSlash(relPath)

		if fd.ignore.Matches(relPath) {
			return nil
		}

		if matchesAnyPattern(relPath, fd.codePatterns) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Special handling: if path is in root (no slash), also try matching
	// against patterns with the **/ prefix removed. This makes "**/*.cpp"
	// match both "main.cpp" and "src/main.cpp" as users would expect.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}
