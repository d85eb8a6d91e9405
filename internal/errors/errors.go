package errors

import (
	"errors"
	"fmt"
)

// Key errors indicate problems loading or decoding an RSA key file.
var (
	// ErrKeyNotFound indicates the key file could not be located.
	ErrKeyNotFound = errors.New("key file not found")

	// ErrNonRSAKey indicates the key file decoded to a non-RSA algorithm.
	ErrNonRSAKey = errors.New("key is not an RSA key")

	// ErrPassphraseRequired indicates the private key is encrypted and a
	// passphrase was not supplied.
	ErrPassphraseRequired = errors.New("private key is passphrase-protected")
)

// File errors indicate problems locating or creating confcrypt files.
var (
	// ErrFileNotFound indicates the confcrypt file could not be located.
	ErrFileNotFound = errors.New("confcrypt file not found")

	// ErrFileExists indicates the target confcrypt file already exists.
	ErrFileExists = errors.New("confcrypt file already exists")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching confcrypt files found")
)

// KeyUnpackingError indicates the key file bytes could not be decoded.
type KeyUnpackingError struct {
	Err error
}

func (e *KeyUnpackingError) Error() string {
	return fmt.Sprintf("failed to unpack key: %v", e.Err)
}

func (e *KeyUnpackingError) Unwrap() error { return e.Err }

// EncryptionError indicates a value could not be encrypted, for example
// because the plaintext exceeds what the key's modulus allows.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("failed to encrypt value: %v", e.Err)
}

func (e *EncryptionError) Unwrap() error { return e.Err }

// DecryptionError indicates a stored value could not be decoded or decrypted.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("failed to decrypt value: %v", e.Err)
}

func (e *DecryptionError) Unwrap() error { return e.Err }

// MissingLineError indicates an Edit or Remove action targeted an element
// that is not present in the file.
type MissingLineError struct {
	// Description identifies the targeted element.
	Description string
}

func (e *MissingLineError) Error() string {
	return fmt.Sprintf("no line found for %s", e.Description)
}

// WrongFileActionError indicates an action was applied to an element in a
// state that cannot accept it, e.g. Add on an element that already exists.
type WrongFileActionError struct {
	// Description identifies the targeted element.
	Description string

	// Action is the action that was rejected.
	Action string
}

func (e *WrongFileActionError) Error() string {
	return fmt.Sprintf("cannot %s %s: element already exists", e.Action, e.Description)
}

// MalformedLineError indicates a line of a confcrypt file did not match any
// of the recognized line forms.
type MalformedLineError struct {
	// Line is the 1-based line number in the source file.
	Line int

	// Text is the offending line content.
	Text string

	// Err is the underlying parse failure, when one is available.
	Err error
}

func (e *MalformedLineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("malformed line %d: %q", e.Line, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return e.Err }
