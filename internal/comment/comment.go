// Package comment extracts and classifies comment tokens from a token
// stream. Rules that reason about comments cannot use a syntax tree for it;
// the classifier gives them the full comment list and the subset that
// stands alone on its line.
//
// Precondition: the feeding lexer guarantees that a line comment is the
// last token on its source line. The classifier never looks ahead, so a
// block comment followed by code on the same line is handled by the normal
// adjacency rule for the tokens that follow it.
package comment

import (
	"comet/internal/source"
	"comet/internal/token"
)

// Source yields tokens in document order. The stream is terminated by a
// token with Kind token.EOF; *lexer.Lexer satisfies this.
type Source interface {
	Next() token.Token
}

// Info is the classification result for one token stream. It is built once
// by Compute and never mutated afterwards, so it is safe to share across
// any number of concurrent readers. Token text is referenced, not copied.
type Info struct {
	comments []token.Token
	ownLine  []token.Token
}

// Comments returns every comment token in document order.
// Do not modify the returned slice: it aliases Info's internal storage.
func (i Info) Comments() []token.Token {
	return i.comments
}

// OwnLine returns, in document order, the comments that are the first
// non-whitespace token on their source line. It is always a subsequence of
// Comments.
// Do not modify the returned slice: it aliases Info's internal storage.
func (i Info) OwnLine() []token.Token {
	return i.ownLine
}

// Compute classifies the stream in a single forward pass. A comment is
// own-line when there is no previous token, or when the previous token's
// last byte sits on an earlier line than the comment's first byte. Every
// token, comment or not, becomes the new lookback token, Newline and
// Invalid markers included: whatever ends on the comment's start line makes
// it trailing.
func Compute(file *source.File, src Source) Info {
	var info Info
	var prev token.Token
	hasPrev := false
	for {
		tok := src.Next()
		if tok.Kind == token.EOF {
			return info
		}
		info.observe(file, tok, prev, hasPrev)
		prev = tok
		hasPrev = true
	}
}

// ComputeTokens classifies an already materialized stream. A trailing EOF
// token is allowed but not required.
func ComputeTokens(file *source.File, tokens []token.Token) Info {
	var info Info
	var prev token.Token
	hasPrev := false
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		info.observe(file, tok, prev, hasPrev)
		prev = tok
		hasPrev = true
	}
	return info
}

func (i *Info) observe(file *source.File, tok, prev token.Token, hasPrev bool) {
	if tok.Kind != token.Comment {
		return
	}
	i.comments = append(i.comments, tok)

	startLine, _ := file.SpanLines(tok.Span)
	if !hasPrev {
		i.ownLine = append(i.ownLine, tok)
		return
	}
	_, prevEndLine := file.SpanLines(prev.Span)
	if prevEndLine != startLine {
		i.ownLine = append(i.ownLine, tok)
	}
}
