package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classver/classver/internal/reflection"
)

// Test Plan for C++ Parser:
// - Emit one event per named class/struct/union definition, in source order
// - Qualified names encode the enclosing namespace and class scope
// - Members keep declaration order; methods and static members are excluded
// - Pointer, reference, and array declarators decorate the type text
// - Empty bodies still produce an event with zero members
// - Forward declarations and anonymous types produce no event
// - Nested classes are visited as their own events after their enclosure

func collectFileEvents(t *testing.T, p Parser, path string) []reflection.DeclEvent {
	t.Helper()

	var events []reflection.DeclEvent
	err := p.VisitFile(context.Background(), path, func(ev reflection.DeclEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	return events
}

func eventByName(events []reflection.DeclEvent, name string) *reflection.DeclEvent {
	for i := range events {
		if events[i].QualifiedName == name {
			return &events[i]
		}
	}
	return nil
}

func TestCppParser_VisitsDefinitionsInSourceOrder(t *testing.T) {
	t.Parallel()

	events := collectFileEvents(t, NewCppParser(), "../../testdata/code/cpp/simple.cpp")

	require.Len(t, events, 4)
	assert.Equal(t, "n::m::C", events[0].QualifiedName)
	assert.Equal(t, "n::Point", events[1].QualifiedName)
	assert.Equal(t, "Empty", events[2].QualifiedName)
	assert.Equal(t, "Value", events[3].QualifiedName)
}

func TestCppParser_MembersExcludeMethodsAndStatics(t *testing.T) {
	t.Parallel()

	events := collectFileEvents(t, NewCppParser(), "../../testdata/code/cpp/simple.cpp")

	c := eventByName(events, "n::m::C")
	require.NotNil(t, c)

	require.Len(t, c.Members, 4)
	assert.Equal(t, reflection.DeclMember{Type: "int", Name: "n::m::C::x"}, c.Members[0])
	assert.Equal(t, reflection.DeclMember{Type: "double", Name: "n::m::C::y"}, c.Members[1])
	assert.Equal(t, reflection.DeclMember{Type: "std::string", Name: "n::m::C::name"}, c.Members[2])
	assert.Equal(t, reflection.DeclMember{Type: "char *", Name: "n::m::C::buffer"}, c.Members[3])
}

func TestCppParser_StructAndUnionMembers(t *testing.T) {
	t.Parallel()

	events := collectFileEvents(t, NewCppParser(), "../../testdata/code/cpp/simple.cpp")

	point := eventByName(events, "n::Point")
	require.NotNil(t, point)
	require.Len(t, point.Members, 2)
	assert.Equal(t, "n::Point::x", point.Members[0].Name)
	assert.Equal(t, "n::Point::y", point.Members[1].Name)

	value := eventByName(events, "Value")
	require.NotNil(t, value)
	require.Len(t, value.Members, 2)
	assert.Equal(t, reflection.DeclMember{Type: "int", Name: "Value::i"}, value.Members[0])
	assert.Equal(t, reflection.DeclMember{Type: "float", Name: "Value::f"}, value.Members[1])
}

func TestCppParser_EmptyClassKeepsEvent(t *testing.T) {
	t.Parallel()

	events := collectFileEvents(t, NewCppParser(), "../../testdata/code/cpp/simple.cpp")

	empty := eventByName(events, "Empty")
	require.NotNil(t, empty)
	require.NotNil(t, empty.Members)
	assert.Empty(t, empty.Members)
}

func TestCppParser_NestedClassAndDeclarators(t *testing.T) {
	t.Parallel()

	events := collectFileEvents(t, NewCppParser(), "../../testdata/code/cpp/nested.cpp")

	// The forward declaration of Widget produces no extra event.
	require.Len(t, events, 2)

	widget := events[0]
	assert.Equal(t, "outer::Widget", widget.QualifiedName)
	require.Len(t, widget.Members, 3)
	assert.Equal(t, reflection.DeclMember{Type: "Handle", Name: "outer::Widget::handle"}, widget.Members[0])
	assert.Equal(t, reflection.DeclMember{Type: "int [8]", Name: "outer::Widget::refs"}, widget.Members[1])
	assert.Equal(t, reflection.DeclMember{Type: "Widget *", Name: "outer::Widget::next"}, widget.Members[2])

	// The nested class carries its enclosing scope in the qualified name.
	handle := events[1]
	assert.Equal(t, "outer::Widget::Handle", handle.QualifiedName)
	require.Len(t, handle.Members, 1)
	assert.Equal(t, reflection.DeclMember{Type: "unsigned long", Name: "outer::Widget::Handle::id"}, handle.Members[0])
}

func TestCppParser_MultipleDeclaratorsAndReferences(t *testing.T) {
	t.Parallel()

	source := []byte(`
struct Pair {
    int x, y;
    int &ref;
    char **argv;
};
`)

	var events []reflection.DeclEvent
	err := NewCppParser().VisitSource(context.Background(), source, func(ev reflection.DeclEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	pair := events[0]
	require.Len(t, pair.Members, 4)
	assert.Equal(t, reflection.DeclMember{Type: "int", Name: "Pair::x"}, pair.Members[0])
	assert.Equal(t, reflection.DeclMember{Type: "int", Name: "Pair::y"}, pair.Members[1])
	assert.Equal(t, reflection.DeclMember{Type: "int &", Name: "Pair::ref"}, pair.Members[2])
	assert.Equal(t, reflection.DeclMember{Type: "char **", Name: "Pair::argv"}, pair.Members[3])
}

func TestCppParser_AnonymousTypesProduceNoEvent(t *testing.T) {
	t.Parallel()

	source := []byte(`
struct {
    int orphan;
} instance;

class Named {
    int kept;
};
`)

	var events []reflection.DeclEvent
	err := NewCppParser().VisitSource(context.Background(), source, func(ev reflection.DeclEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "Named", events[0].QualifiedName)
}

func TestCppParser_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewCppParser().VisitSource(ctx, []byte("class C {};"), func(reflection.DeclEvent) {
		t.Fatal("visit must not run after cancellation")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCppParser_MissingFile(t *testing.T) {
	t.Parallel()

	err := NewCppParser().VisitFile(context.Background(), "../../testdata/code/cpp/nonexistent.cpp", func(reflection.DeclEvent) {})
	require.Error(t, err)
}
