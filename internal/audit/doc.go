// Package audit appends JSONL records of mutating operations next to the
// confcrypt file they touched. The log is advisory: a failed append never
// fails the operation that triggered it.
package audit
