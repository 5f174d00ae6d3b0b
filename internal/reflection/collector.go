package reflection

import "context"

// DeclMember is one (type text, qualified name) pair describing a direct
// non-static data member of a visited declaration.
type DeclMember struct {
	Type string
	Name string
}

// DeclEvent is one declaration-visit notification: a type declaration and
// its direct data members, observed in source order. Members inherited from
// base classes are not part of the event.
type DeclEvent struct {
	QualifiedName string
	Members       []DeclMember
}

// DeclarationSource produces declaration-visit events in source order.
// Any front end that can walk a syntax tree and print qualified names can
// be adapted to this interface.
type DeclarationSource interface {
	// VisitDeclarations invokes visit once per type declaration. The visit
	// callback must not be called concurrently.
	VisitDeclarations(ctx context.Context, visit func(DeclEvent)) error
}

// Collector consumes declaration-visit events, applies the name filter, and
// appends the surviving declarations to the database. It is the sole writer
// of the database while a scan is running.
type Collector struct {
	db     *Database
	filter *Filter
}

// NewCollector creates a collector that appends into db, retaining only the
// names accepted by filter.
func NewCollector(db *Database, filter *Filter) *Collector {
	return &Collector{
		db:     db,
		filter: filter,
	}
}

// Collect processes a single event. A rejected name creates no record at
// all; an accepted declaration with zero members still produces a record
// with an empty field list. Duplicate visits of the same underlying
// declaration append independent records, no merging occurs.
func (c *Collector) Collect(ev DeclEvent) {
	if !c.filter.ShouldInclude(ev.QualifiedName) {
		return
	}

	rec := ClassRecord{
		Name:   ev.QualifiedName,
		Fields: []Field{},
	}
	for _, m := range ev.Members {
		rec.Fields = append(rec.Fields, Field{
			Type: m.Type,
			Name: m.Name,
		})
	}

	c.db.Append(rec)
}

// CollectFrom drains a declaration source into the database.
func (c *Collector) CollectFrom(ctx context.Context, src DeclarationSource) error {
	return src.VisitDeclarations(ctx, c.Collect)
}
