package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// CParser extracts declaration-visit events from C files. C has no scope
// operator, but the snapshot keeps the same "Record::member" join convention
// for member names so downstream consumers see one naming scheme.
type CParser struct {
	*treeSitterParser
}

// NewCParser creates a new C parser.
func NewCParser() *CParser {
	lang := sitter.NewLanguage(c.Language())
	return &CParser{
		treeSitterParser: newTreeSitterParser(lang, "c"),
	}
}
