// Package errors provides typed error values for the confcrypt application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Errors that
// carry a payload (the element description for edit failures, the underlying
// cause for key and cipher failures) are struct types usable with errors.As().
//
// # Error Categories
//
//   - Key errors: key file missing, wrong algorithm, passphrase needed
//     (ErrKeyNotFound, ErrNonRSAKey, ErrPassphraseRequired, KeyUnpackingError)
//   - Cipher errors: value encryption/decryption failures
//     (EncryptionError, DecryptionError)
//   - Edit errors: the requested edit does not apply to the current file
//     content (MissingLineError, WrongFileActionError)
//   - File errors: confcrypt file discovery and parsing
//     (ErrFileNotFound, ErrNoFilesFound, MalformedLineError)
//
// # Usage
//
// Return errors from internal packages:
//
//	if !found {
//	    return nil, &errors.MissingLineError{Description: el.Describe()}
//	}
//
// Handle errors in the CLI layer:
//
//	var missing *cerrors.MissingLineError
//	if errors.As(err, &missing) {
//	    // Show user-friendly message
//	}
package errors
