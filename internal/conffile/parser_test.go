package conffile

import (
	"errors"
	"strings"
	"testing"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

func TestParseMixedFile(t *testing.T) {
	text := `# database credentials
DB_PASS : string
DB_PASS = BEGINc2VjcmV0END
RETRIES : int
RETRIES = 3
`
	state, err := ParseString(text)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := map[Element]int{
		Comment{Text: "database credentials"}:                   1,
		Schema{Name: "DB_PASS", Type: StringType}:               2,
		Parameter{Name: "DB_PASS", Value: "BEGINc2VjcmV0END"}:   3,
		Schema{Name: "RETRIES", Type: IntType}:                  4,
		Parameter{Name: "RETRIES", Value: "3"}:                  5,
	}
	if len(state) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(state))
	}
	for el, line := range want {
		if got := state[el]; got != line {
			t.Errorf("%s: expected line %d, got %d", el.Describe(), line, got)
		}
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	lines := []string{
		"# header",
		"NAME : string",
		"NAME = BEGINabc+/=END",
		"FLAG : bool",
		"FLAG = true",
	}
	text := strings.Join(lines, "\n") + "\n"

	state, err := ParseString(text)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	got := Render(state)
	if len(got) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(got))
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Errorf("line %d: expected %q, got %q", i+1, lines[i], got[i])
		}
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	state, err := ParseString("# a\n\n\nX : int\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := state[Schema{Name: "X", Type: IntType}]; got != 2 {
		t.Errorf("expected schema at line 2 after blank lines skipped, got %d", got)
	}
}

func TestParseValueMayContainSeparators(t *testing.T) {
	state, err := ParseString("URL = https://example.com:8080/path?q=1\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	p, ok := state.ParameterByName("URL")
	if !ok {
		t.Fatal("parameter URL not found")
	}
	if p.Value != "https://example.com:8080/path?q=1" {
		t.Errorf("unexpected value %q", p.Value)
	}
}

func TestParseMalformedLine(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "NoSeparator", text: "JUSTAWORD\n"},
		{name: "UnknownType", text: "X : float\n"},
		{name: "SpaceInName", text: "TWO WORDS = v\n"},
		{name: "EmptyName", text: "= value\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.text)
			var malformed *cerrors.MalformedLineError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedLineError, got %v", err)
			}
			if malformed.Line != 1 {
				t.Errorf("expected line 1, got %d", malformed.Line)
			}
		})
	}
}

func TestParseRejectsDuplicateLines(t *testing.T) {
	_, err := ParseString("X = 1\nX = 1\n")
	if err == nil {
		t.Fatal("expected error for structurally identical duplicate lines")
	}
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "ParameterTwice", text: "X = a\nX = b\n"},
		{name: "SchemaTwice", text: "X : int\nX : string\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.text)
			if err == nil {
				t.Fatal("expected error for repeated name")
			}
			if !strings.Contains(err.Error(), "duplicate") {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestParseSharedNameAcrossKindsIsAllowed(t *testing.T) {
	// The usual schema/parameter pair shares a name; only repeats within
	// one kind are duplicates.
	if _, err := ParseString("X : int\nX = 1\n"); err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
}

func TestParseMalformedLineCarriesCause(t *testing.T) {
	_, err := ParseString("X : float\n")
	var malformed *cerrors.MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedLineError, got %v", err)
	}
	if malformed.Err == nil {
		t.Fatal("expected the underlying parse failure to be carried")
	}
	if !strings.Contains(err.Error(), "float") {
		t.Errorf("error should name the rejected type, got %v", err)
	}
}

func TestParseSchemaTypeForms(t *testing.T) {
	testCases := []struct {
		in   string
		want SchemaType
	}{
		{"string", StringType},
		{"int", IntType},
		{"integer", IntType},
		{"bool", BoolType},
		{"Boolean", BoolType},
	}
	for _, tc := range testCases {
		got, err := ParseSchemaType(tc.in)
		if err != nil {
			t.Errorf("ParseSchemaType(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSchemaType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseSchemaType("float"); err == nil {
		t.Error("expected error for unknown schema type")
	}
}

func TestRenderOrderIndependentOfInsertion(t *testing.T) {
	// Maps iterate in random order; render order must come from line
	// numbers alone.
	state := FileState{
		Parameter{Name: "C", Value: "3"}: 3,
		Comment{Text: "first"}:           1,
		Parameter{Name: "B", Value: "2"}: 2,
	}

	want := []string{"# first", "B = 2", "C = 3"}
	for i := 0; i < 10; i++ {
		got := Render(state)
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("render %d, line %d: expected %q, got %q", i, j+1, want[j], got[j])
			}
		}
	}
}
