package conffile

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaType enumerates the value types a schema line can declare.
type SchemaType int

const (
	StringType SchemaType = iota
	IntType
	BoolType
)

// String returns the canonical rendering used in schema lines.
func (t SchemaType) String() string {
	switch t {
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	default:
		return "string"
	}
}

// ParseSchemaType parses the textual form of a schema type. It accepts the
// canonical names plus the common long forms.
func ParseSchemaType(s string) (SchemaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return StringType, nil
	case "int", "integer":
		return IntType, nil
	case "bool", "boolean":
		return BoolType, nil
	}
	return StringType, fmt.Errorf("unknown schema type %q (expected string, int, or bool)", s)
}

// Element is one logical line of a confcrypt file: a comment, a schema
// declaration, or a parameter assignment. Elements are compared structurally,
// so two parameters with the same name but different values are distinct.
type Element interface {
	// Render returns the element's single-line textual form.
	Render() string

	// Describe returns a short description for error messages.
	Describe() string

	element()
}

// Comment is a `# text` line. Comments are carried through rendering but are
// never targeted by edits.
type Comment struct {
	Text string
}

func (c Comment) Render() string   { return "# " + c.Text }
func (c Comment) Describe() string { return fmt.Sprintf("comment %q", c.Text) }
func (Comment) element()           {}

// Schema is a `name : type` line declaring a parameter's value type.
type Schema struct {
	Name string
	Type SchemaType
}

func (s Schema) Render() string   { return s.Name + " : " + s.Type.String() }
func (s Schema) Describe() string { return fmt.Sprintf("schema for %q", s.Name) }
func (Schema) element()           {}

// Parameter is a `name = value` line. The value may be a plain scalar or
// sentinel-wrapped ciphertext.
type Parameter struct {
	Name  string
	Value string
}

func (p Parameter) Render() string   { return p.Name + " = " + p.Value }
func (p Parameter) Describe() string { return fmt.Sprintf("parameter %q", p.Name) }
func (Parameter) element()           {}

// FileState maps each element of a confcrypt file to its 1-based line number.
// After any successful edit batch the line numbers in use are exactly 1..N
// with no gaps or duplicates. Display order is derived solely from the line
// numbers; the map itself is unordered.
type FileState map[Element]int

// Clone returns an independent copy of the state.
func (s FileState) Clone() FileState {
	out := make(FileState, len(s))
	for el, line := range s {
		out[el] = line
	}
	return out
}

// MaxLine returns the highest line number in use, or 0 for an empty state.
func (s FileState) MaxLine() int {
	max := 0
	for _, line := range s {
		if line > max {
			max = line
		}
	}
	return max
}

// Parameters returns the parameter elements in ascending line order.
func (s FileState) Parameters() []Parameter {
	type entry struct {
		param Parameter
		line  int
	}
	var entries []entry
	for el, line := range s {
		if p, ok := el.(Parameter); ok {
			entries = append(entries, entry{p, line})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].line < entries[j].line })

	params := make([]Parameter, len(entries))
	for i, e := range entries {
		params[i] = e.param
	}
	return params
}

// Schemas returns the schema elements in ascending line order.
func (s FileState) Schemas() []Schema {
	type entry struct {
		schema Schema
		line   int
	}
	var entries []entry
	for el, line := range s {
		if sc, ok := el.(Schema); ok {
			entries = append(entries, entry{sc, line})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].line < entries[j].line })

	schemas := make([]Schema, len(entries))
	for i, e := range entries {
		schemas[i] = e.schema
	}
	return schemas
}

// ParameterByName returns the parameter with the given name, if present.
func (s FileState) ParameterByName(name string) (Parameter, bool) {
	for el := range s {
		if p, ok := el.(Parameter); ok && p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// SchemaByName returns the schema declaration for the given name, if present.
func (s FileState) SchemaByName(name string) (Schema, bool) {
	for el := range s {
		if sc, ok := el.(Schema); ok && sc.Name == name {
			return sc, true
		}
	}
	return Schema{}, false
}

// checkContiguous panics if the line numbers are not exactly 1..N. A
// violation means a bug in the edit engine or the parser, not a user error.
func (s FileState) checkContiguous() {
	seen := make(map[int]bool, len(s))
	for el, line := range s {
		if line < 1 || line > len(s) {
			panic(fmt.Sprintf("conffile: line %d out of range for %d elements (%s)", line, len(s), el.Describe()))
		}
		if seen[line] {
			panic(fmt.Sprintf("conffile: duplicate line number %d (%s)", line, el.Describe()))
		}
		seen[line] = true
	}
}
