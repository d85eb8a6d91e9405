// Package conffile models confcrypt files as a mapping from structured
// lines (comments, schema declarations, parameters) to 1-based line numbers,
// and provides the edit engine that mutates that mapping while keeping the
// numbering dense and stable.
//
// The model is keyed by element content, so the same logical line can appear
// only once. Edits are applied strictly in order; removing a line shifts
// every later line down by one, and editing a line never moves it. Rendering
// sorts by line number, which is the only source of display order.
package conffile
