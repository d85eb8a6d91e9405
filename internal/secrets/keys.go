package secrets

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

// KeyPair holds a decoded RSA key pair. The public and private halves are
// obtained through the explicit Public and Private projections.
type KeyPair struct {
	private *rsa.PrivateKey
}

// NewKeyPair wraps an already-decoded RSA private key.
func NewKeyPair(private *rsa.PrivateKey) *KeyPair {
	return &KeyPair{private: private}
}

// Private returns the private half of the pair.
func (k *KeyPair) Private() *rsa.PrivateKey { return k.private }

// Public returns the public half of the pair.
func (k *KeyPair) Public() *rsa.PublicKey { return &k.private.PublicKey }

// UnpackKeyPair decodes the raw bytes of an OpenSSH-formatted private key
// file into a key pair. PEM-encoded PKCS#1 keys are accepted as well, since
// the OpenSSH parser recognizes both framings.
//
// Returns ErrPassphraseRequired if the key is encrypted and no passphrase
// was given, ErrNonRSAKey if the bytes decode to a different algorithm, and
// a KeyUnpackingError for anything else the decoder rejects.
func UnpackKeyPair(data []byte, passphrase []byte) (*KeyPair, error) {
	key, err := parseOpenSSHPrivateKey(data, passphrase)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: key}, nil
}

// LoadKeyPair reads a private key file from disk and unpacks it.
func LoadKeyPair(path string, passphrase []byte) (*KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cerrors.ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("failed to read key file at %s: %w", path, err)
	}
	return UnpackKeyPair(data, passphrase)
}

func parseOpenSSHPrivateKey(pemBytes []byte, passphrase []byte) (*rsa.PrivateKey, error) {
	var (
		raw any
		err error
	)
	if len(passphrase) > 0 {
		raw, err = ssh.ParseRawPrivateKeyWithPassphrase(pemBytes, passphrase)
	} else {
		raw, err = ssh.ParseRawPrivateKey(pemBytes)
	}
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, cerrors.ErrPassphraseRequired
		}
		return nil, &cerrors.KeyUnpackingError{Err: err}
	}

	rsaKey, ok := raw.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", cerrors.ErrNonRSAKey, raw)
	}
	return rsaKey, nil
}

// GenerateKeyPair creates a new 2048-bit RSA key pair and saves it to disk:
// the private half OpenSSH-formatted at privatePath, the public half as a
// PKIX PEM block at publicPath.
func GenerateKeyPair(privatePath string, publicPath string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	for _, p := range []string{privatePath, publicPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			return fmt.Errorf("failed to create directory for key at %s: %w", p, err)
		}
	}

	privBlock, err := ssh.MarshalPrivateKey(privateKey, "")
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}
	if err := os.WriteFile(privatePath, pem.EncodeToMemory(privBlock), 0600); err != nil {
		return fmt.Errorf("failed to write private key to %s: %w", privatePath, err)
	}

	pubASN1, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}
	pubPem := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubASN1,
	})
	// #nosec G306 -- the public half is meant to be shared.
	if err := os.WriteFile(publicPath, pubPem, 0644); err != nil {
		return fmt.Errorf("failed to write public key to %s: %w", publicPath, err)
	}

	return nil
}
