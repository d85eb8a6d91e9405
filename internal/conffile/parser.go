package conffile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

// Parse reads confcrypt file text into a FileState. The grammar is
// line-oriented with three forms:
//
//	# <text>           comment
//	<name> : <type>    schema declaration
//	<name> = <value>   parameter assignment
//
// Blank lines are skipped and do not occupy a line number. Any other line
// is a MalformedLineError. A name may carry at most one schema line and one
// parameter line; repeats are rejected so edits always resolve to a single
// entry. Structurally identical lines are rejected as well, because the
// state is keyed by content.
func Parse(r io.Reader) (FileState, error) {
	state := make(FileState)
	seenNames := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	sourceLine := 0
	nextLine := 1
	for scanner.Scan() {
		sourceLine++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		el, err := parseLine(raw)
		if err != nil {
			return nil, &cerrors.MalformedLineError{Line: sourceLine, Text: raw, Err: err}
		}

		if key, keyed := identityKey(el); keyed {
			if seenNames[key] {
				return nil, fmt.Errorf("duplicate %s on line %d", el.Describe(), sourceLine)
			}
			seenNames[key] = true
		}
		if _, exists := state[el]; exists {
			return nil, fmt.Errorf("duplicate line %d: %q", sourceLine, raw)
		}
		state[el] = nextLine
		nextLine++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading confcrypt file: %w", err)
	}

	return state, nil
}

// ParseString parses in-memory confcrypt file text.
func ParseString(text string) (FileState, error) {
	return Parse(strings.NewReader(text))
}

// identityKey distinguishes names per element kind, so a schema line and a
// parameter line may share a name but two of either kind may not.
func identityKey(el Element) (string, bool) {
	switch x := el.(type) {
	case Schema:
		return "schema\x00" + x.Name, true
	case Parameter:
		return "parameter\x00" + x.Name, true
	}
	return "", false
}

func parseLine(raw string) (Element, error) {
	line := strings.TrimSpace(raw)

	if strings.HasPrefix(line, "#") {
		return Comment{Text: strings.TrimSpace(strings.TrimPrefix(line, "#"))}, nil
	}

	// A parameter's value may contain ':' (and base64 values contain '='),
	// so the first separator decides the line form.
	eq := strings.Index(line, "=")
	col := strings.Index(line, ":")

	if eq >= 0 && (col < 0 || eq < col) {
		name := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		if name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("invalid parameter name")
		}
		return Parameter{Name: name, Value: value}, nil
	}

	if col >= 0 {
		name := strings.TrimSpace(line[:col])
		typ, err := ParseSchemaType(line[col+1:])
		if err != nil {
			return nil, err
		}
		if name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("invalid schema name")
		}
		return Schema{Name: name, Type: typ}, nil
	}

	return nil, fmt.Errorf("unrecognized line form")
}
