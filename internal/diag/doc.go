// Package diag defines the diagnostic model shared by the lexer, the parser
// and the lint rules.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info (printed as "note"), Warning or Error.
//   - Code: compact numeric identifier (see codes.go) with a stable string
//     form such as SYN2001 or LNT3002.
//   - Message: short human oriented text.
//   - Primary: the source.Span the finding is about.
//   - Notes: optional secondary spans.
//   - Fixes: optional Fix records made of FixEdit replacements.
//
// Fixes are data only. The fix package applies them; diagfmt renders them.
//
// # Emitting diagnostics
//
// Phases receive a Reporter. ReportError/ReportWarning/ReportInfo return a
// ReportBuilder that collects notes and fixes until Emit. BagReporter stores
// into a Bag, which supports a limit, merging, sorting and deduplication.
//
// A Bag is not safe for concurrent use. The driver gives every file its own
// bag and merges them once the workers are done.
package diag
