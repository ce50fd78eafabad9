// Package token defines lexical token kinds of the template language.
// Invariants:
//   - Token.Text is the exact source text of Span (no unescaping).
//   - Raw template data between tags is a single Text token.
//   - A whole comment tag `{# ... #}` is a single Comment token.
//   - Tag delimiters keep their whitespace-control dash in Text ("{%-", "-}}").
//   - Keywords are case-sensitive; True/False/None are accepted as aliases.
//     Words with a meaning in one tag only (ignore, missing) stay Ident.
package token
