package workflows

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/confcrypt/confcrypt/internal/audit"
	"github.com/confcrypt/confcrypt/internal/conffile"
	"github.com/confcrypt/confcrypt/internal/secrets"
)

// EncryptWholeOptions configures the bulk encrypt workflow.
type EncryptWholeOptions struct {
	// FilePaths are the confcrypt files to encrypt.
	FilePaths []string

	// Key is the key pair whose public half encrypts the values.
	Key *secrets.KeyPair

	// Random supplies encryption entropy. Defaults to crypto/rand.Reader.
	Random io.Reader
}

// EncryptWholeResult contains the outcome of a bulk encrypt operation.
type EncryptWholeResult struct {
	// Encrypted maps each file path to the number of parameters encrypted.
	Encrypted map[string]int
}

// EncryptWhole encrypts every currently-plaintext parameter of each file,
// replacing values in place. Parameters that already carry ciphertext
// framing are left alone, as are blank values. Used to bootstrap a freshly
// written file.
func EncryptWhole(ctx context.Context, opts EncryptWholeOptions) (*EncryptWholeResult, error) {
	random := opts.Random
	if random == nil {
		random = rand.Reader
	}

	result := &EncryptWholeResult{Encrypted: make(map[string]int)}

	for _, path := range opts.FilePaths {
		state, err := conffile.LoadFile(path)
		if err != nil {
			return nil, err
		}

		var edits []conffile.EditOp
		var names []string
		for _, param := range state.Parameters() {
			if param.Value == "" || secrets.IsWrapped(param.Value) {
				continue
			}
			encoded, err := secrets.EncryptValue(random, opts.Key.Public(), param.Value)
			if err != nil {
				return nil, fmt.Errorf("encrypting %s in %s: %w", param.Name, path, err)
			}
			edits = append(edits, conffile.EditOp{
				Element: conffile.Parameter{Name: param.Name, Value: secrets.Wrap(encoded)},
				Action:  conffile.Edit,
			})
			names = append(names, param.Name)
		}

		result.Encrypted[path] = len(edits)
		if len(edits) == 0 {
			continue
		}

		next, err := conffile.Apply(state, edits)
		if err != nil {
			return nil, err
		}

		if err := conffile.WriteFile(path, next); err != nil {
			return nil, err
		}

		audit.Log(path, audit.Entry{
			Operation:  "encrypt",
			Parameters: names,
			Count:      len(names),
		})
	}

	return result, nil
}
