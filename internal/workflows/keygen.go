package workflows

import (
	"context"

	"github.com/confcrypt/confcrypt/internal/configs"
	"github.com/confcrypt/confcrypt/internal/secrets"
)

// KeygenOptions configures the keygen workflow.
type KeygenOptions struct {
	// PrivatePath is where the OpenSSH-formatted private key is written.
	// The public half lands at PrivatePath + ".pub".
	PrivatePath string

	// SetDefault records the private key path in the user config so
	// commands can omit --key.
	SetDefault bool
}

// KeygenResult contains the outcome of a keygen operation.
type KeygenResult struct {
	PrivatePath string
	PublicPath  string
}

// Keygen generates a 2048-bit RSA key pair and saves it to disk, optionally
// recording the private key as the user's default.
func Keygen(ctx context.Context, opts KeygenOptions) (*KeygenResult, error) {
	publicPath := opts.PrivatePath + ".pub"

	if err := secrets.GenerateKeyPair(opts.PrivatePath, publicPath); err != nil {
		return nil, err
	}

	if opts.SetDefault {
		config, err := configs.EnsureUserConfig()
		if err != nil {
			return nil, err
		}
		config.Defaults.KeyPath = opts.PrivatePath
		if err := configs.SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return &KeygenResult{
		PrivatePath: opts.PrivatePath,
		PublicPath:  publicPath,
	}, nil
}
