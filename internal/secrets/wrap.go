package secrets

import "strings"

// Sentinel markers framing encrypted values in a stored parameter line.
// Base64 text cannot collide with them, so wrapped ciphertext survives the
// line-oriented file format intact.
const (
	wrapPrefix = "BEGIN"
	wrapSuffix = "END"
)

// Wrap frames encoded ciphertext for storage on a single line. The empty
// string stays empty, matching the cipher's empty-value identity.
func Wrap(encoded string) string {
	if encoded == "" {
		return ""
	}
	return wrapPrefix + encoded + wrapSuffix
}

// Unwrap strips the storage framing and reports whether it was present.
func Unwrap(stored string) (string, bool) {
	if !IsWrapped(stored) {
		return stored, false
	}
	return strings.TrimSuffix(strings.TrimPrefix(stored, wrapPrefix), wrapSuffix), true
}

// IsWrapped reports whether a stored value carries the ciphertext framing.
func IsWrapped(stored string) bool {
	return len(stored) > len(wrapPrefix)+len(wrapSuffix) &&
		strings.HasPrefix(stored, wrapPrefix) &&
		strings.HasSuffix(stored, wrapSuffix)
}
