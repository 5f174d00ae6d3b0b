package reflection

// Field represents one non-static data member of a class.
type Field struct {
	// Type is the textual rendering of the member's declared type,
	// exactly as produced by the front end. It is never re-parsed.
	Type string

	// Name is the member's fully qualified name, e.g. "n::m::C::x".
	Name string
}

// ClassRecord represents one class, struct, or union definition observed
// during traversal.
type ClassRecord struct {
	// Name is the fully qualified name, assigned once at creation.
	Name string

	// Fields holds the direct non-static data members in declaration order.
	Fields []Field
}

// Database is the root accumulator for a scan. Records are appended in
// traversal-visit order and never removed, reordered, or merged; the same
// qualified name may appear more than once when it is observed in multiple
// translation units.
type Database struct {
	Classes []ClassRecord
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		Classes: []ClassRecord{},
	}
}

// Append adds a record to the end of the database.
func (db *Database) Append(rec ClassRecord) {
	db.Classes = append(db.Classes, rec)
}

// Len returns the number of accumulated records.
func (db *Database) Len() int {
	return len(db.Classes)
}
