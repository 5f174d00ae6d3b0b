package parser

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/classver/classver/internal/reflection"
)

// treeSitterParser provides the shared walk over a tree-sitter syntax tree
// that turns type definitions into declaration-visit events. The C and C++
// grammars use the same node kinds for everything this walk cares about, so
// both parsers share it; kinds one grammar lacks simply never match.
type treeSitterParser struct {
	language *sitter.Language
	lang     string
}

// newTreeSitterParser creates a walker for the given grammar.
func newTreeSitterParser(language *sitter.Language, lang string) *treeSitterParser {
	return &treeSitterParser{
		language: language,
		lang:     lang,
	}
}

// VisitFile parses a source file and invokes visit once per named type
// definition, in source order.
func (p *treeSitterParser) VisitFile(ctx context.Context, filePath string, visit func(reflection.DeclEvent)) error {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := p.VisitSource(ctx, source, visit); err != nil {
		return fmt.Errorf("failed to parse %s file %s: %w", p.lang, filePath, err)
	}
	return nil
}

// VisitSource parses in-memory source and emits declaration-visit events.
func (p *treeSitterParser) VisitSource(ctx context.Context, source []byte, visit func(reflection.DeclEvent)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return fmt.Errorf("parser produced no syntax tree")
	}
	defer tree.Close()

	p.visitScope(tree.RootNode(), source, nil, visit)
	return nil
}

// visitScope walks a subtree looking for type definitions. scope holds the
// enclosing namespace and class names, outermost first.
func (p *treeSitterParser) visitScope(node *sitter.Node, source []byte, scope []string, visit func(reflection.DeclEvent)) {
	if node == nil {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))

		switch child.Kind() {
		case "namespace_definition":
			name := extractNodeText(child.ChildByFieldName("name"), source)
			body := child.ChildByFieldName("body")
			inner := scope
			if name != "" {
				inner = appendScope(scope, name)
			}
			p.visitScope(body, source, inner, visit)

		case "class_specifier", "struct_specifier", "union_specifier":
			p.visitRecord(child, source, scope, visit)

		default:
			// Local and otherwise nested definitions (extern "C" blocks,
			// template declarations, function bodies) are visited exactly
			// like top-level ones.
			p.visitScope(child, source, scope, visit)
		}
	}
}

// visitRecord emits one event for a named type definition, then walks its
// body so nested types produce their own events with scope-encoded names.
// Anonymous types and bodyless forward declarations produce no event.
func (p *treeSitterParser) visitRecord(node *sitter.Node, source []byte, scope []string, visit func(reflection.DeclEvent)) {
	name := extractNodeText(node.ChildByFieldName("name"), source)
	if name == "" {
		return
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}

	qualified := strings.Join(appendScope(scope, name), "::")

	ev := reflection.DeclEvent{
		QualifiedName: qualified,
		Members:       []reflection.DeclMember{},
	}

	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(uint(i))
		if child.Kind() != "field_declaration" {
			continue
		}
		p.extractMembers(child, source, qualified, &ev)
	}

	visit(ev)

	p.visitScope(body, source, appendScope(scope, name), visit)
}

// extractMembers appends one member per data-member declarator of a
// field_declaration. Method declarations and static members are not data
// members and are skipped.
func (p *treeSitterParser) extractMembers(node *sitter.Node, source []byte, classQualified string, ev *reflection.DeclEvent) {
	if hasStaticSpecifier(node, source) {
		return
	}

	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return
	}
	baseType := renderTypeText(typeNode, source)

	// A single field_declaration can carry several declarators (int x, y;).
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch child.Kind() {
		case "field_identifier", "pointer_declarator", "array_declarator", "reference_declarator":
			name, decorated := unwrapDeclarator(child, source, baseType)
			if name == "" {
				continue
			}
			ev.Members = append(ev.Members, reflection.DeclMember{
				Type: decorated,
				Name: classQualified + "::" + name,
			})
		}
	}
}

// unwrapDeclarator digs through pointer, reference, and array declarators to
// the member name, decorating the type text the way a type printer would
// ("int *", "char **", "int [8]").
func unwrapDeclarator(node *sitter.Node, source []byte, typeText string) (name string, decorated string) {
	stars := 0
	ref := false
	arraySuffix := ""

	current := node
	for current != nil {
		switch current.Kind() {
		case "field_identifier", "identifier":
			name = extractNodeText(current, source)
			current = nil

		case "pointer_declarator":
			stars++
			current = current.ChildByFieldName("declarator")

		case "reference_declarator":
			ref = true
			current = namedDescendant(current)

		case "array_declarator":
			size := extractNodeText(current.ChildByFieldName("size"), source)
			arraySuffix = "[" + size + "]" + arraySuffix
			current = current.ChildByFieldName("declarator")

		case "function_declarator":
			// Method declaration, not a data member.
			return "", ""

		default:
			current = namedDescendant(current)
		}
	}

	if name == "" {
		return "", ""
	}

	decorated = typeText
	if stars > 0 || ref {
		decorated += " " + strings.Repeat("*", stars)
		if ref {
			decorated += "&"
		}
	}
	if arraySuffix != "" {
		decorated += " " + arraySuffix
	}
	return name, decorated
}

// renderTypeText prints a type node. Inline record and enum definitions used
// directly as a member type print as "struct Name" rather than their whole
// body text.
func renderTypeText(node *sitter.Node, source []byte) string {
	var keyword string
	switch node.Kind() {
	case "class_specifier":
		keyword = "class"
	case "struct_specifier":
		keyword = "struct"
	case "union_specifier":
		keyword = "union"
	case "enum_specifier":
		keyword = "enum"
	default:
		return extractNodeText(node, source)
	}

	if name := extractNodeText(node.ChildByFieldName("name"), source); name != "" {
		return keyword + " " + name
	}
	return keyword
}

// hasStaticSpecifier reports whether a declaration carries a static storage
// class specifier.
func hasStaticSpecifier(node *sitter.Node, source []byte) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == "storage_class_specifier" && extractNodeText(child, source) == "static" {
			return true
		}
	}
	return false
}

// namedDescendant returns the first named child, used to step through
// declarator wrappers that expose no field name for their inner declarator.
func namedDescendant(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(uint(i)); child != nil {
			return child
		}
	}
	return nil
}

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// appendScope copies the scope before appending so sibling scopes never
// share backing storage.
func appendScope(scope []string, name string) []string {
	out := make([]string, 0, len(scope)+1)
	out = append(out, scope...)
	return append(out, name)
}
