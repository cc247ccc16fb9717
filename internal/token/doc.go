// Package token defines the lexical token model shared by the lexer, the
// comment classifier, and rule evaluation.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Comments are first-class tokens in the main stream, not trivia glued
//     to their neighbours: downstream analysis reasons about them by
//     position, in document order.
//   - A line comment never contains its terminating newline, so for the
//     hash and slash styles a comment is always the last token on its line.
package token
