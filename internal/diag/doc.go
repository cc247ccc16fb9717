// Package diag defines the diagnostic model shared by the lexer and the
// lint rules.
//
// Diagnostic is the central record: a Severity, a compact numeric Code with
// a stable string form, a short human message, the primary source.Span, and
// optional Notes adding secondary context. Producers emit diagnostics
// through the Reporter interface; Bag is the standard bounded accumulator
// behind it. Rendering lives in internal/diagfmt, never here.
package diag
