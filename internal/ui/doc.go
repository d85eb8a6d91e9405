// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities: colorized
// when colors are available, text-based decorations (backticks, quotes) when
// NO_COLOR is set or the terminal does not support them.
//
//	ui.Code.Sprint("confcrypt add")         // Commands and code
//	ui.Path.Sprint("config.econf")          // File paths
//	ui.Success.Sprint("✓")                   // Success indicators
//	ui.Error.Sprint("✗")                     // Error indicators
//	ui.Info.Sprint("→")                      // Informational hints
//	ui.Highlight.Sprint("DB_PASSWORD")      // User values
package ui
