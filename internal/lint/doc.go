// Package lint holds the template lint rules and the autofix pass.
//
// Rules are read-only: they walk a parsed document through ast.Walk and
// report diagnostics, attaching a fix when the finding can be rewritten.
// Autofix is the mutating counterpart: it walks with exclusive views,
// replaces the matched expressions in place and returns the text edits that
// turn the old source into the rewritten one.
package lint
