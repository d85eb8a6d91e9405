package secrets

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"io"
	"strings"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

// EncryptValue encrypts a plaintext string with the public key and returns
// the base64 encoding of the ciphertext. The empty string is never
// encrypted: it maps to the empty string so blank values stay visibly blank.
//
// random supplies the entropy for the padding and must be a source of
// cryptographically secure randomness; callers outside tests pass
// crypto/rand.Reader.
func EncryptValue(random io.Reader, publicKey *rsa.PublicKey, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	ciphertext, err := rsa.EncryptPKCS1v15(random, publicKey, []byte(plaintext))
	if err != nil {
		return "", &cerrors.EncryptionError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptValue base64-decodes the input and decrypts it with the private
// key. The empty string decrypts to the empty string, mirroring
// EncryptValue. Decoding is lenient about missing padding.
func DecryptValue(privateKey *rsa.PrivateKey, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	raw, err := decodeBase64Lenient(ciphertext)
	if err != nil {
		return "", &cerrors.DecryptionError{Err: err}
	}
	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, raw)
	if err != nil {
		return "", &cerrors.DecryptionError{Err: err}
	}
	return string(plaintext), nil
}

func decodeBase64Lenient(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
