// Package secrets provides the cryptographic boundary of confcrypt: RSA key
// import and projection, per-value encryption and decryption, and the
// BEGIN/END sentinel framing used to store ciphertext safely inside a
// line-oriented file.
package secrets
