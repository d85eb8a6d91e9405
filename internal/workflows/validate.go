package workflows

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/secrets"
)

// ValidateOptions configures the validate workflow.
type ValidateOptions struct {
	// FilePaths are the confcrypt files to check.
	FilePaths []string

	// Key is the key pair whose private half decrypts values for the type
	// consistency checks.
	Key *secrets.KeyPair
}

// Finding is a single validation problem in one file.
type Finding struct {
	File      string
	Parameter string
	Problem   string
}

// ValidateResult contains the outcome of a validate operation.
type ValidateResult struct {
	// Findings lists every detected problem. Empty means all files are valid.
	Findings []Finding

	// FilesChecked is the number of files examined.
	FilesChecked int
}

// Validate checks each file without mutating it: every parameter must have a
// schema declaration and vice versa, every encrypted value must decrypt with
// the private key, and every decrypted value must be consistent with its
// declared type. All problems are collected rather than stopping at the first.
func Validate(ctx context.Context, opts ValidateOptions) (*ValidateResult, error) {
	result := &ValidateResult{}

	for _, path := range opts.FilePaths {
		state, err := conffile.LoadFile(path)
		if err != nil {
			return nil, err
		}
		result.FilesChecked++
		result.Findings = append(result.Findings, validateState(path, state, opts.Key)...)
	}

	return result, nil
}

func validateState(path string, state conffile.FileState, key *secrets.KeyPair) []Finding {
	var findings []Finding

	for _, param := range state.Parameters() {
		schema, ok := state.SchemaByName(param.Name)
		if !ok {
			findings = append(findings, Finding{
				File:      path,
				Parameter: param.Name,
				Problem:   "parameter has no schema declaration",
			})
			continue
		}

		value := param.Value
		if encoded, wrapped := secrets.Unwrap(value); wrapped {
			plaintext, err := secrets.DecryptValue(key.Private(), encoded)
			if err != nil {
				findings = append(findings, Finding{
					File:      path,
					Parameter: param.Name,
					Problem:   fmt.Sprintf("value does not decrypt: %v", err),
				})
				continue
			}
			value = plaintext
		}

		if problem := checkType(value, schema.Type); problem != "" {
			findings = append(findings, Finding{
				File:      path,
				Parameter: param.Name,
				Problem:   problem,
			})
		}
	}

	for _, schema := range state.Schemas() {
		if _, ok := state.ParameterByName(schema.Name); !ok {
			findings = append(findings, Finding{
				File:      path,
				Parameter: schema.Name,
				Problem:   "schema has no parameter line",
			})
		}
	}

	return findings
}

func checkType(value string, typ conffile.SchemaType) string {
	switch typ {
	case conffile.IntType:
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return fmt.Sprintf("value %q is not an int", value)
		}
	case conffile.BoolType:
		if _, err := strconv.ParseBool(strings.TrimSpace(value)); err != nil {
			return fmt.Sprintf("value %q is not a bool", value)
		}
	}
	return ""
}
