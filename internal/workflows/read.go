package workflows

import (
	"context"
	"fmt"

	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/secrets"
)

// ReadOptions configures the read workflow.
type ReadOptions struct {
	// FilePath is the confcrypt file to decrypt.
	FilePath string

	// Key is the key pair whose private half decrypts the values.
	Key *secrets.KeyPair
}

// ReadResult contains the outcome of a read operation.
type ReadResult struct {
	// Lines is the fully decrypted file in display order.
	Lines []string
}

// Read decrypts every encrypted parameter of a confcrypt file and returns
// the rendered plaintext lines. The file on disk is not modified.
//
// Parameters without ciphertext framing are passed through unchanged; a
// bootstrap file may legitimately hold plaintext values. Any single
// decryption failure aborts the whole read.
func Read(ctx context.Context, opts ReadOptions) (*ReadResult, error) {
	state, err := conffile.LoadFile(opts.FilePath)
	if err != nil {
		return nil, err
	}

	privateKey := opts.Key.Private()

	var edits []conffile.EditOp
	for _, param := range state.Parameters() {
		encoded, wrapped := secrets.Unwrap(param.Value)
		if !wrapped {
			continue
		}
		plaintext, err := secrets.DecryptValue(privateKey, encoded)
		if err != nil {
			return nil, fmt.Errorf("decrypting %s: %w", param.Name, err)
		}
		edits = append(edits, conffile.EditOp{
			Element: conffile.Parameter{Name: param.Name, Value: plaintext},
			Action:  conffile.Edit,
		})
	}

	decrypted, err := conffile.Apply(state, edits)
	if err != nil {
		return nil, err
	}

	return &ReadResult{Lines: conffile.Render(decrypted)}, nil
}
