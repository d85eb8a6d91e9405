// Package configs manages confcrypt's user-level configuration: a TOML file
// in the user's config directory holding their identity and defaults such as
// the default private key path. Settings that derive from the environment
// (config dir, data dir, username) are initialized once at startup.
package configs
