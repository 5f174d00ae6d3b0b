package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

// CppParser extracts declaration-visit events from C++ files.
type CppParser struct {
	*treeSitterParser
}

// NewCppParser creates a new C++ parser.
func NewCppParser() *CppParser {
	lang := sitter.NewLanguage(cpp.Language())
	return &CppParser{
		treeSitterParser: newTreeSitterParser(lang, "cpp"),
	}
}
