package lexer

import (
	"comet/internal/diag"
	"comet/internal/source"
)

// Styles selects which comment syntaxes the lexer recognizes. The zero
// value disables all of them: comment markers then lex as ordinary
// punctuation. Callers that want the usual syntaxes pass DefaultStyles.
type Styles struct {
	Hash  bool // '#' to end of line
	Slash bool // '//' to end of line
	Block bool // '/* ... */', nesting allowed, may span lines
}

// DefaultStyles enables every supported comment syntax.
func DefaultStyles() Styles {
	return Styles{Hash: true, Slash: true, Block: true}
}

type Options struct {
	Reporter diag.Reporter // may be nil: diagnostics are dropped, lexing continues
	Styles   Styles
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
