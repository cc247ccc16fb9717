package lint

import (
	"strings"

	"comet/internal/diag"
	"comet/internal/source"
	"comet/internal/token"
)

// HeaderRule verifies that a file opens with the configured license header:
// one own-line comment per configured line, before any other token.
type HeaderRule struct {
	// Lines is the expected header text, one entry per comment line,
	// without comment markers.
	Lines []string
}

func (r *HeaderRule) Name() string { return "header" }

func (r *HeaderRule) Check(ctx *Context) {
	if len(r.Lines) == 0 {
		return
	}

	own := ctx.Comments.OwnLine()
	if len(own) == 0 {
		diag.ReportWarning(ctx.Reporter, diag.LintMissingHeader,
			source.Span{File: ctx.File.ID, Start: 0, End: 0},
			"file does not start with the required license header").
			Emit()
		return
	}

	// the header must start at the very top: only comments and blank lines
	// may precede it, which for own-line comments means the first comment
	// in the file must be the first own-line comment.
	all := ctx.Comments.Comments()
	if len(all) > 0 && all[0] != own[0] {
		diag.ReportWarning(ctx.Reporter, diag.LintHeaderNotOnTop, own[0].Span,
			"license header must be the first content in the file").
			WithNote(all[0].Span, "preceded by this trailing comment").
			Emit()
		return
	}
	firstLine, _ := ctx.File.SpanLines(own[0].Span)
	if tokenBeforeLine(ctx, firstLine) {
		diag.ReportWarning(ctx.Reporter, diag.LintHeaderNotOnTop, own[0].Span,
			"license header must be the first content in the file").
			Emit()
		return
	}

	for i, want := range r.Lines {
		if i >= len(own) {
			diag.ReportWarning(ctx.Reporter, diag.LintHeaderMismatch, own[len(own)-1].Span,
				"license header is shorter than required").
				Emit()
			return
		}
		got := commentBody(own[i].Text)
		if got != want {
			diag.ReportWarning(ctx.Reporter, diag.LintHeaderMismatch, own[i].Span,
				"license header line does not match").
				WithNote(own[i].Span, "expected: "+want).
				Emit()
			return
		}
	}
}

// tokenBeforeLine reports whether any code token starts before the given
// line. Comments, newlines and EOF do not count as code.
func tokenBeforeLine(ctx *Context, line uint32) bool {
	for _, tok := range ctx.Tokens {
		if tok.IsComment() || tok.IsEOF() || tok.Kind == token.Newline {
			continue
		}
		start, _ := ctx.File.SpanLines(tok.Span)
		return start < line
	}
	return false
}

// commentBody strips the comment marker and surrounding space from a
// comment token's text.
func commentBody(text string) string {
	switch {
	case strings.HasPrefix(text, "#"):
		text = strings.TrimPrefix(text, "#")
	case strings.HasPrefix(text, "//"):
		text = strings.TrimPrefix(text, "//")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	return strings.TrimSpace(text)
}
