package workflows

import (
	"context"

	"github.com/confcrypt/confcrypt/internal/audit"
	"github.com/confcrypt/confcrypt/internal/conffile"
)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	// FilePath is the confcrypt file to modify.
	FilePath string

	// Name identifies the parameter to remove.
	Name string
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	// Lines is the updated file in display order.
	Lines []string
}

// Delete removes the schema line and the parameter line for a name. No key
// is required; values are removed without being decrypted.
//
// Returns MissingLineError if either line does not exist.
func Delete(ctx context.Context, opts DeleteOptions) (*DeleteResult, error) {
	state, err := conffile.LoadFile(opts.FilePath)
	if err != nil {
		return nil, err
	}

	edits := []conffile.EditOp{
		{Element: conffile.Parameter{Name: opts.Name}, Action: conffile.Remove},
		{Element: conffile.Schema{Name: opts.Name}, Action: conffile.Remove},
	}

	next, err := conffile.Apply(state, edits)
	if err != nil {
		return nil, err
	}

	if err := conffile.WriteFile(opts.FilePath, next); err != nil {
		return nil, err
	}

	audit.Log(opts.FilePath, audit.Entry{
		Operation:  "delete",
		Parameters: []string{opts.Name},
	})

	return &DeleteResult{Lines: conffile.Render(next)}, nil
}
