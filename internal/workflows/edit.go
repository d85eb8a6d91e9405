package workflows

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/confcrypt/confcrypt/internal/audit"
	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/secrets"
)

// EditOptions configures the edit workflow.
type EditOptions struct {
	// FilePath is the confcrypt file to modify.
	FilePath string

	// Key is the key pair whose public half encrypts the new value.
	Key *secrets.KeyPair

	// Name identifies the parameter; Value is its new plaintext value.
	Name  string
	Value string

	// Type, when HasType is set, replaces the declared schema type.
	Type    conffile.SchemaType
	HasType bool

	// Random supplies encryption entropy. Defaults to crypto/rand.Reader.
	Random io.Reader
}

// EditResult contains the outcome of an edit operation.
type EditResult struct {
	// Lines is the updated file in display order.
	Lines []string
}

// Edit re-encrypts a new value for an existing parameter, replacing the old
// parameter line in place. When a new type is given, the schema line is
// replaced in place as well. Line numbers never change.
//
// Returns MissingLineError if the parameter (or, with HasType, its schema)
// does not exist.
func Edit(ctx context.Context, opts EditOptions) (*EditResult, error) {
	state, err := conffile.LoadFile(opts.FilePath)
	if err != nil {
		return nil, err
	}

	random := opts.Random
	if random == nil {
		random = rand.Reader
	}

	encoded, err := secrets.EncryptValue(random, opts.Key.Public(), opts.Value)
	if err != nil {
		return nil, err
	}

	var edits []conffile.EditOp
	if opts.HasType {
		edits = append(edits, conffile.EditOp{
			Element: conffile.Schema{Name: opts.Name, Type: opts.Type},
			Action:  conffile.Edit,
		})
	}
	edits = append(edits, conffile.EditOp{
		Element: conffile.Parameter{Name: opts.Name, Value: secrets.Wrap(encoded)},
		Action:  conffile.Edit,
	})

	next, err := conffile.Apply(state, edits)
	if err != nil {
		return nil, err
	}

	if err := conffile.WriteFile(opts.FilePath, next); err != nil {
		return nil, err
	}

	audit.Log(opts.FilePath, audit.Entry{
		Operation:  "edit",
		Parameters: []string{opts.Name},
	})

	return &EditResult{Lines: conffile.Render(next)}, nil
}
