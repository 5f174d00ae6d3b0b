package parser

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/classver/classver/internal/reflection"
)

// Parser extracts declaration-visit events from a single source file.
type Parser interface {
	VisitFile(ctx context.Context, filePath string, visit func(reflection.DeclEvent)) error
}

// SourceForFile returns a declaration source for filePath, or nil when the
// extension is not a recognized C or C++ source or header. Headers use the
// C++ grammar, which also accepts plain C declarations.
func SourceForFile(filePath string) reflection.DeclarationSource {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".c":
		return &fileSource{parser: NewCParser(), path: filePath}
	case ".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx", ".h":
		return &fileSource{parser: NewCppParser(), path: filePath}
	}
	return nil
}

// fileSource adapts one on-disk file to reflection.DeclarationSource.
type fileSource struct {
	parser Parser
	path   string
}

func (s *fileSource) VisitDeclarations(ctx context.Context, visit func(reflection.DeclEvent)) error {
	return s.parser.VisitFile(ctx, s.path, visit)
}
