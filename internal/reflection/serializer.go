package reflection

import "strings"

// Serializer output is a fixed near-JSON convention consumed byte-for-byte
// by downstream generators, so the indentation and comma placement below are
// structural invariants, not formatting taste. Note in particular the space
// before the colon in the "type" entry; consumers match on it. String values
// are copied verbatim with no escaping, so an embedded quote character passes
// through unescaped.

// fieldIndent is the extra indentation of a block's body relative to its
// opening bracket.
const fieldIndent = 4

// Serialize renders the database as nested text starting at the given base
// indentation. Records and fields appear in insertion order; serializing the
// same database twice yields byte-identical output.
func Serialize(db *Database, indent int) string {
	base := strings.Repeat(" ", indent)

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("[\n")

	for i := range db.Classes {
		writeRecord(&b, &db.Classes[i], indent+fieldIndent)
		if i < len(db.Classes)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString(base)
	b.WriteString("]")
	return b.String()
}

// writeRecord renders one record block with its opening brace at the given
// indentation. A record always carries exactly two entries, "name" and
// "fields"; an empty field list renders as an empty bracketed sequence.
func writeRecord(b *strings.Builder, rec *ClassRecord, indent int) {
	outer := strings.Repeat(" ", indent)
	inner := strings.Repeat(" ", indent+fieldIndent)

	b.WriteString(outer)
	b.WriteString("{\n")

	b.WriteString(inner)
	b.WriteString(`"name": "`)
	b.WriteString(rec.Name)
	b.WriteString("\",\n")

	b.WriteString(inner)
	b.WriteString(`"fields": `)
	if len(rec.Fields) == 0 {
		b.WriteString("[]\n")
	} else {
		b.WriteString("[\n")
		for i := range rec.Fields {
			writeField(b, &rec.Fields[i], indent+2*fieldIndent)
			if i < len(rec.Fields)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(inner)
		b.WriteString("]\n")
	}

	b.WriteString(outer)
	b.WriteString("}")
}

// writeField renders one field block: a "type" entry and a "variable" entry,
// both verbatim.
func writeField(b *strings.Builder, f *Field, indent int) {
	outer := strings.Repeat(" ", indent)
	inner := strings.Repeat(" ", indent+fieldIndent)

	b.WriteString(outer)
	b.WriteString("{\n")

	b.WriteString(inner)
	b.WriteString(`"type" : "`)
	b.WriteString(f.Type)
	b.WriteString("\",\n")

	b.WriteString(inner)
	b.WriteString(`"variable": "`)
	b.WriteString(f.Name)
	b.WriteString("\"\n")

	b.WriteString(outer)
	b.WriteString("}")
}
