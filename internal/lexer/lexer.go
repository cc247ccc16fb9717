package lexer

import (
	"unicode/utf8"

	"comet/internal/source"
	"comet/internal/token"
)

// Lexer produces the token stream for one source file. Unlike lexers that
// hide comments as trivia, every comment is a first-class token in the main
// stream: the comment classifier depends on seeing comments interleaved
// with the tokens around them.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next token. Spaces and tabs are skipped; line breaks are
// emitted as Newline tokens. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipBlanks()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '\n':
		return lx.scanNewlines()

	case ch == '#' && lx.opts.Styles.Hash:
		return lx.scanLineComment()

	case ch == '/' && lx.isCommentStart():
		if _, b1, _ := lx.cursor.Peek2(); b1 == '*' {
			return lx.scanBlockComment()
		}
		return lx.scanLineComment()

	case isIdentStartByte(ch) || ch >= utf8.RuneSelf:
		return lx.scanIdent()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '\'':
		return lx.scanSingleQuoted()

	case ch == '`':
		return lx.scanRawString()

	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipBlanks consumes spaces and tabs. They carry no information for
// comment classification: line adjacency is decided by positions alone.
func (lx *Lexer) skipBlanks() {
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			return
		}
		lx.cursor.Bump()
	}
}

// scanNewlines coalesces a run of consecutive '\n' into one Newline token.
func (lx *Lexer) scanNewlines() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Newline, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// isCommentStart reports whether the cursor sits on "//" or "/*" with the
// corresponding style enabled.
func (lx *Lexer) isCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	if b1 == '/' {
		return lx.opts.Styles.Slash
	}
	if b1 == '*' {
		return lx.opts.Styles.Block
	}
	return false
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
