package lexer

import (
	"comet/internal/token"
)

// scanNumber accepts 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, .5, with '_'
// separators. comet only needs positions; malformed digit runs are left in
// the token text rather than diagnosed.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// leading dot: ".digits" (caller checked isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDecDigits()
		lx.eatExponent()
		return lx.emitNumber(start)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B', 'o', 'O':
			lx.cursor.Bump()
			lx.eatDecDigits() // 0/1 and octal digits are a subset; '_' included
			return lx.emitNumber(start)
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			return lx.emitNumber(start)
		}
	}

	lx.eatDecDigits()
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		lx.eatDecDigits()
	}
	lx.eatExponent()
	return lx.emitNumber(start)
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatExponent() {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
		lx.cursor.Bump() // e
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		lx.eatDecDigits()
	}
}

func (lx *Lexer) emitNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
