package lexer

import (
	"comet/internal/diag"
	"comet/internal/token"
)

// scanPunct emits a single punctuation byte. Multi-byte operators are not
// combined: comment classification only needs token boundaries and lines.
// Control bytes produce an Invalid token and a diagnostic.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if b < 0x20 || b == 0x7F {
		lx.errLex(diag.LexUnknownChar, sp, "unexpected control character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Punct, Span: sp, Text: text}
}
