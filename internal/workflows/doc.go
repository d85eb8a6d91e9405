// Package workflows implements the user-facing confcrypt operations as pure
// orchestration over the conffile edit engine and the secrets cipher.
//
// Each workflow takes an Options struct and returns a Result struct. A
// workflow reads the confcrypt file into a file state, optionally invokes
// the cipher per parameter, builds an ordered edit batch, applies it through
// the edit engine, and renders the result. Mutating workflows write the
// rendered lines back and append an audit entry; nothing is written when any
// step fails.
package workflows
