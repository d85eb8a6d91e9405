package workflows

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/confcrypt/confcrypt/internal/audit"
	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/secrets"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	// FilePath is the confcrypt file to modify.
	FilePath string

	// Key is the key pair whose public half encrypts the value.
	Key *secrets.KeyPair

	// Name, Value, and Type describe the new parameter. Value is plaintext.
	Name  string
	Value string
	Type  conffile.SchemaType

	// Random supplies encryption entropy. Defaults to crypto/rand.Reader.
	Random io.Reader
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	// Lines is the updated file in display order.
	Lines []string
}

// Add encrypts a new parameter value and appends a schema line and a
// parameter line to the confcrypt file.
//
// Returns WrongFileActionError if a schema or parameter with that name
// already exists.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
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

	edits := []conffile.EditOp{
		{Element: conffile.Schema{Name: opts.Name, Type: opts.Type}, Action: conffile.Add},
		{Element: conffile.Parameter{Name: opts.Name, Value: secrets.Wrap(encoded)}, Action: conffile.Add},
	}

	next, err := conffile.Apply(state, edits)
	if err != nil {
		return nil, err
	}

	if err := conffile.WriteFile(opts.FilePath, next); err != nil {
		return nil, err
	}

	audit.Log(opts.FilePath, audit.Entry{
		Operation:  "add",
		Parameters: []string{opts.Name},
	})

	return &AddResult{Lines: conffile.Render(next)}, nil
}
